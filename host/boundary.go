package host

import (
	"fmt"
	"io"
	"os"

	"github.com/trickstertwo/rlog"
	"github.com/trickstertwo/rlog/adapter/breaker"
	slogadapter "github.com/trickstertwo/rlog/adapter/slog"
	zapadapter "github.com/trickstertwo/rlog/adapter/zap"
	zerologadapter "github.com/trickstertwo/rlog/adapter/zerolog"
	"github.com/trickstertwo/rlog/config"
)

// Boundary exposes the operations a host drives on one Logger.
type Boundary struct {
	l *rlog.Logger
	// Writer receives sink output selected by Apply; default os.Stderr.
	Writer io.Writer
}

// New binds a Boundary to l; nil selects rlog.Instance().
func New(l *rlog.Logger) *Boundary {
	if l == nil {
		l = rlog.Instance()
	}
	return &Boundary{l: l}
}

// Logger returns the bound Logger.
func (b *Boundary) Logger() *rlog.Logger { return b.l }

// SetVerbose selects LevelVerbose when on, the default LevelLog otherwise.
func (b *Boundary) SetVerbose(on bool) {
	if on {
		b.l.SetLevel(rlog.LevelVerbose)
		return
	}
	b.l.SetLevel(rlog.LevelLog)
}

// SetListener enables logging and routes entries to c. A nil c disables
// logging and releases the current listener.
func (b *Boundary) SetListener(c Consumer) {
	if c == nil {
		b.disable()
		return
	}
	b.install(NewListenerProxy(c))
}

// SetUTF16Listener is SetListener for hosts with UTF-16 strings.
func (b *Boundary) SetUTF16Listener(c UTF16Consumer) {
	if c == nil {
		b.disable()
		return
	}
	b.install(NewUTF16ListenerProxy(c))
}

func (b *Boundary) install(o rlog.Observer) {
	b.l.SetListener(o)
	b.l.Enable(true)
}

func (b *Boundary) disable() {
	b.l.Enable(false)
	b.l.SetListener(nil)
}

// Apply sets verbosity, capacity and sink from cfg. Sink "none" disables
// logging; any other sink enables it.
func (b *Boundary) Apply(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := b.l.SetEntriesToKeep(cfg.EntriesToKeep); err != nil {
		return err
	}
	b.SetVerbose(cfg.Verbose)

	o, err := b.sink(cfg)
	if err != nil {
		return err
	}
	if o == nil {
		b.disable()
		return nil
	}
	if cfg.Breaker.Enabled {
		o = breaker.Wrap(o, breaker.Settings{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			Timeout:          cfg.Breaker.Timeout,
		})
	}
	b.install(o)
	return nil
}

func (b *Boundary) sink(cfg config.Config) (rlog.Observer, error) {
	w := b.Writer
	if w == nil {
		w = os.Stderr
	}
	switch cfg.Sink {
	case config.SinkNone:
		return nil, nil
	case config.SinkStderr:
		return NewListenerProxy(WriterConsumer{W: w}), nil
	case config.SinkZerolog:
		return zerologadapter.Build(zerologadapter.Config{Writer: w, Console: cfg.Console}), nil
	case config.SinkZap:
		return zapadapter.Build(zapadapter.Config{Writer: w, Console: cfg.Console}), nil
	case config.SinkSlog:
		format := slogadapter.FormatJSON
		if cfg.Console {
			format = slogadapter.FormatText
		}
		return slogadapter.Build(slogadapter.Config{Writer: w, Format: format}), nil
	default:
		return nil, fmt.Errorf("%w: unknown sink %q", config.ErrInvalidConfig, cfg.Sink)
	}
}

// Package-level boundary over rlog.Instance().

func SetVerbose(on bool)            { New(nil).SetVerbose(on) }
func SetListener(c Consumer)        { New(nil).SetListener(c) }
func Apply(cfg config.Config) error { return New(nil).Apply(cfg) }
