package zerologadapter

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/rlog"
)

// Config is an explicit, code-first configuration for a zerolog sink.
type Config struct {
	Writer  io.Writer // default: os.Stderr
	Console bool      // zerolog.ConsoleWriter instead of JSON
	NoColor bool      // console only
}

// Build creates a zerolog-backed Observer from cfg.
func Build(cfg Config) *Observer {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.Console {
		// No zerolog timestamp is written; the entry time shows up as the ts field.
		w = zerolog.ConsoleWriter{
			Out:          w,
			NoColor:      cfg.NoColor,
			PartsExclude: []string{zerolog.TimestampFieldName},
		}
	}
	return New(zerolog.New(w).Level(zerolog.DebugLevel))
}

// Use builds a zerolog sink, installs it on rlog.Instance() and enables
// logging. It returns the observer for convenience.
func Use(cfg Config) *Observer {
	o := Build(cfg)
	l := rlog.Instance()
	l.SetListener(o)
	l.Enable(true)
	return o
}
