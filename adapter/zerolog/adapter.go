package zerologadapter

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/rlog"
)

// Observer forwards accepted rlog entries to a zerolog.Logger.
//
// The entry's capture time is written as "ts" (RFC3339Nano) so output keeps
// rlog's timestamp rather than zerolog's write time.
type Observer struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Observer {
	return &Observer{l: l}
}

// Notify emits one zerolog event carrying the call site as fields.
func (o *Observer) Notify(e rlog.Entry) {
	zlvl := mapLevel(e.Level())

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < o.l.GetLevel() {
		return
	}

	o.l.WithLevel(zlvl).
		Str("ts", e.At().UTC().Format(time.RFC3339Nano)).
		Str("file", e.File()).
		Str("function", e.Function()).
		Int("line", e.Line()).
		Msg(e.Message())
}

// mapLevel converts rlog.Level to zerolog.Level.
func mapLevel(l rlog.Level) zerolog.Level {
	if l <= rlog.LevelVerbose {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
