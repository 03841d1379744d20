package rlog

import "fmt"

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Enabled       bool
	Level         Level
	EntriesToKeep int
	Observer      Observer     // optional
	ErrorHandler  ErrorHandler // optional; defaults to stderr
}

func defaultConfig() Config {
	return Config{
		Level:         LevelLog,
		EntriesToKeep: DefaultEntriesToKeep,
	}
}

// New builds an isolated Logger from cfg. A zero EntriesToKeep selects
// DefaultEntriesToKeep; a negative one is rejected.
func New(cfg Config) (*Logger, error) {
	if cfg.EntriesToKeep == 0 {
		cfg.EntriesToKeep = DefaultEntriesToKeep
	}
	if cfg.EntriesToKeep < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, cfg.EntriesToKeep)
	}
	return newLogger(cfg), nil
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: defaultConfig()}
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithEntriesToKeep(n int) *Builder {
	b.cfg.EntriesToKeep = n
	return b
}

func (b *Builder) WithObserver(o Observer) *Builder {
	b.cfg.Observer = o
	return b
}

func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.cfg.ErrorHandler = h
	return b
}

// Enabled opens the gate on the built Logger.
func (b *Builder) Enabled() *Builder {
	b.cfg.Enabled = true
	return b
}

// Build constructs the Logger (Factory + Builder). Unlike New, the capacity
// must be explicitly positive here.
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.EntriesToKeep <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, b.cfg.EntriesToKeep)
	}
	return newLogger(b.cfg), nil
}
