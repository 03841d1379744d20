package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/rlog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for a slog sink.
type Config struct {
	Writer         io.Writer            // default: os.Stderr
	Format         Format               // JSON (default) or Text
	HandlerOptions *slog.HandlerOptions // optional; Level defaults to debug so rlog's gate decides
}

// Build creates a slog-backed Observer from cfg.
func Build(cfg Config) *Observer {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := cfg.HandlerOptions
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	if opts.Level == nil {
		opts.Level = slog.LevelDebug
	}

	var h slog.Handler
	if cfg.Format == 0 || cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return New(slog.New(h))
}

// Use builds a slog sink, installs it on rlog.Instance() and enables logging.
func Use(cfg Config) *Observer {
	o := Build(cfg)
	l := rlog.Instance()
	l.SetListener(o)
	l.Enable(true)
	return o
}
