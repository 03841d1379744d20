package slogadapter

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/rlog"
)

// Observer forwards accepted rlog entries to a *slog.Logger.
// rlog levels share slog's numbering, so verbose lands on slog.LevelDebug
// and log on slog.LevelInfo.
type Observer struct {
	l *slog.Logger
}

func toSlog(l rlog.Level) slog.Level {
	return slog.Level(l)
}

func New(l *slog.Logger) *Observer {
	if l == nil {
		l = slog.Default()
	}
	return &Observer{l: l}
}

func (o *Observer) Notify(e rlog.Entry) {
	ctx := context.Background()
	lvl := toSlog(e.Level())
	if !o.l.Enabled(ctx, lvl) {
		return
	}
	// Use LogAttrs for minimal allocations
	o.l.LogAttrs(ctx, lvl, e.Message(),
		slog.Time("ts", e.At()),
		slog.String("file", e.File()),
		slog.String("function", e.Function()),
		slog.Int("line", e.Line()),
	)
}
