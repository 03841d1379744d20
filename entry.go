package rlog

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// Entry is one captured event. It is a value: fields are set once by NewEntry
// and only exposed through accessors.
type Entry struct {
	at       time.Time
	message  string
	file     string
	function string
	line     int
	level    Level
}

// NewEntry captures an event. The timestamp comes from xclock so tests can
// freeze it; a negative line is stored as 0.
func NewEntry(message, file, function string, line int, level Level) Entry {
	if line < 0 {
		line = 0
	}
	return Entry{
		at:       xclock.Now(),
		message:  message,
		file:     file,
		function: function,
		line:     line,
		level:    level,
	}
}

func (e Entry) Message() string  { return e.message }
func (e Entry) File() string     { return e.file }
func (e Entry) Function() string { return e.function }
func (e Entry) Line() int        { return e.line }
func (e Entry) Level() Level     { return e.level }

// At is the capture time.
func (e Entry) At() time.Time { return e.at }
