package rlog

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DefaultEntriesToKeep is the retention capacity of a Logger built without
// an explicit one.
const DefaultEntriesToKeep = 100

// Logger gates entries by an enabled flag and a level threshold, retains the
// most recent accepted ones and forwards each to at most one Observer.
//
// One mutex guards all state: Submit's check, append, notify and evict run
// as a unit with respect to every setter, so an observer is never notified
// after it was disposed.
type Logger struct {
	mu       sync.Mutex
	enabled  bool
	level    Level
	entries  *retention
	observer Observer
	onError  ErrorHandler

	st stats
}

// Factory: internal constructor. cfg is assumed validated.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		enabled:  cfg.Enabled,
		level:    cfg.Level,
		entries:  newRetention(cfg.EntriesToKeep),
		observer: cfg.Observer,
		onError:  cfg.ErrorHandler,
	}
	if l.onError == nil {
		l.onError = defaultErrorHandler
	}
	return l
}

// passes is the gate predicate.
func passes(enabled bool, threshold, level Level) bool {
	return enabled && level >= threshold
}

// Accepts reports whether an entry at level would currently pass the gate.
// Use it to skip building messages in hot paths.
func (l *Logger) Accepts(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return passes(l.enabled, l.level, level)
}

// Submit takes ownership of e. If it passes the gate it is retained and the
// observer is notified; otherwise it is dropped without any effect.
func (l *Logger) Submit(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !passes(l.enabled, l.level, e.level) {
		l.st.filtered.Add(1)
		return
	}
	evicted := l.entries.push(e)
	l.st.accepted.Add(1)
	l.st.evicted.Add(uint64(evicted))

	if l.observer != nil {
		l.notify(e)
	}
}

// notify isolates observer failures: the entry is already retained and the
// caller of Submit never sees the panic.
func (l *Logger) notify(e Entry) {
	defer func() {
		if r := recover(); r != nil {
			l.st.observerFailures.Add(1)
			l.onError(&ObserverError{Entry: e, Value: r})
		}
	}()
	l.observer.Notify(e)
}

// SetLevel replaces the threshold for subsequent entries.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetEntriesToKeep changes the retention capacity. Shrinking drops the
// oldest entries immediately. n <= 0 fails with ErrInvalidCapacity and
// leaves the Logger untouched.
func (l *Logger) SetEntriesToKeep(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, n)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.st.evicted.Add(uint64(l.entries.resize(n)))
	return nil
}

func (l *Logger) EntriesToKeep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries.cap()
}

// SetListener installs o as the observer, disposing the previous one first.
// A nil o only clears it.
func (l *Logger) SetListener(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if old := l.observer; old != nil {
		l.observer = nil
		dispose(old)
	}
	l.observer = o
}

// Enable toggles the gate. Level and history are kept.
func (l *Logger) Enable(on bool) {
	l.mu.Lock()
	l.enabled = on
	l.mu.Unlock()
}

func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Entries returns the retained entries, oldest first.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries.snapshot()
}

// Len is the number of retained entries.
func (l *Logger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries.len()
}

// Stats returns a point-in-time counters snapshot.
func (l *Logger) Stats() Stats { return l.st.snapshot() }

// Singleton: process-wide instance.
var (
	instance     *Logger
	instanceOnce sync.Once
)

// Instance returns the process-wide Logger, built on first use with the
// defaults: disabled, LevelLog threshold, DefaultEntriesToKeep, no observer.
func Instance() *Logger {
	instanceOnce.Do(func() {
		instance = newLogger(defaultConfig())
	})
	return instance
}

type stats struct {
	accepted         atomic.Uint64
	filtered         atomic.Uint64
	evicted          atomic.Uint64
	observerFailures atomic.Uint64
}

// Stats is a point-in-time counters snapshot.
type Stats struct {
	Accepted         uint64
	Filtered         uint64
	Evicted          uint64
	ObserverFailures uint64
}

func (s *stats) snapshot() Stats {
	return Stats{
		Accepted:         s.accepted.Load(),
		Filtered:         s.filtered.Load(),
		Evicted:          s.evicted.Load(),
		ObserverFailures: s.observerFailures.Load(),
	}
}
