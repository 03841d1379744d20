package rlog

// Facade helpers using the process-wide Logger.
// Usage: rlog.Log().Str("opened ").Int(n).Commit()

func Verbose() *Event { return Instance().capture(LevelVerbose, 2) }
func Log() *Event     { return Instance().capture(LevelLog, 2) }
