package rlog

import (
	"fmt"
	"runtime"
	"time"
)

// Event is a fluent builder for one entry's message.
// API: l.Log().Str("opened ").Int(3).Str(" windows").Commit()
//
// Nothing is logged until Commit. An Event belongs to one goroutine; after
// Commit it is empty again and may be reused for the next message.
type Event struct {
	l        *Logger
	level    Level
	file     string
	function string
	line     int
	buf      buffer
}

// At starts an Event with explicit call-site metadata.
func (l *Logger) At(level Level, file, function string, line int) *Event {
	return &Event{l: l, level: level, file: file, function: function, line: line}
}

// Level entry points capturing the caller's location.

func (l *Logger) Verbose() *Event { return l.capture(LevelVerbose, 2) }
func (l *Logger) Log() *Event     { return l.capture(LevelLog, 2) }

// capture resolves the frame skip levels above it.
func (l *Logger) capture(level Level, skip int) *Event {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return l.At(level, "", "", 0)
	}
	function := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return l.At(level, file, function, line)
}

// Appenders, in call order.

func (e *Event) Str(s string) *Event {
	e.buf.writeString(s)
	return e
}

func (e *Event) Int(v int) *Event { return e.Int64(int64(v)) }

func (e *Event) Int64(v int64) *Event {
	appendInt64(&e.buf, v)
	return e
}

func (e *Event) Uint64(v uint64) *Event {
	appendUint64(&e.buf, v)
	return e
}

func (e *Event) Float64(v float64) *Event {
	appendFloat64(&e.buf, v)
	return e
}

func (e *Event) Bool(v bool) *Event {
	appendBool(&e.buf, v)
	return e
}

func (e *Event) Dur(v time.Duration) *Event {
	appendDuration(&e.buf, v)
	return e
}

func (e *Event) Time(v time.Time) *Event {
	appendRFC3339Nano(&e.buf, v)
	return e
}

// Err appends err's text, or "<nil>".
func (e *Event) Err(err error) *Event {
	if err == nil {
		e.buf.writeString("<nil>")
		return e
	}
	e.buf.writeString(err.Error())
	return e
}

// Bytes appends p as raw text.
func (e *Event) Bytes(p []byte) *Event {
	e.buf.writeBytes(p)
	return e
}

// Any appends v in its default fmt form.
func (e *Event) Any(v any) *Event {
	fmt.Fprint(&e.buf, v)
	return e
}

// Message returns the text accumulated so far.
func (e *Event) Message() string { return e.buf.String() }

// Commit freezes the accumulated text into an Entry, submits it and clears
// the accumulator. An empty message is valid.
func (e *Event) Commit() {
	entry := NewEntry(e.buf.String(), e.file, e.function, e.line, e.level)
	e.buf.reset()
	e.l.Submit(entry)
}

// Msg appends s and commits.
func (e *Event) Msg(s string) {
	e.Str(s).Commit()
}
