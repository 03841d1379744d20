// Package breaker guards an rlog observer with a circuit breaker.
//
// A failing sink (one whose Notify panics) trips the breaker after
// FailureThreshold consecutive failures; while open, entries skip the sink
// entirely and are only counted. Entries are always retained by the Logger
// regardless of the breaker state.
package breaker

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/trickstertwo/rlog"
)

// Settings configures the breaker.
type Settings struct {
	Name             string        // default "rlog-observer"
	FailureThreshold uint32        // consecutive failures before opening; default 5
	Timeout          time.Duration // open period before a half-open probe; default 30s
	OnStateChange    func(name string, from, to gobreaker.State)
}

// Observer wraps another observer. It implements rlog.Observer and
// rlog.Disposer.
type Observer struct {
	next    rlog.Observer
	cb      *gobreaker.CircuitBreaker[struct{}]
	skipped atomic.Uint64
}

// Wrap guards next with a circuit breaker configured by s.
func Wrap(next rlog.Observer, s Settings) *Observer {
	if s.Name == "" {
		s.Name = "rlog-observer"
	}
	if s.FailureThreshold == 0 {
		s.FailureThreshold = 5
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	threshold := s.FailureThreshold
	return &Observer{
		next: next,
		cb: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        s.Name,
			MaxRequests: 1,
			Timeout:     s.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: s.OnStateChange,
		}),
	}
}

// Notify forwards e unless the breaker is open. A failure of the wrapped
// observer is re-raised so the Logger reports it through its ErrorHandler.
func (o *Observer) Notify(e rlog.Entry) {
	_, err := o.cb.Execute(func() (struct{}, error) {
		return struct{}{}, o.call(e)
	})
	switch {
	case err == nil:
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		o.skipped.Add(1)
	default:
		panic(err)
	}
}

func (o *Observer) call(e rlog.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(error); ok {
				err = fmt.Errorf("breaker: observer failed: %w", re)
				return
			}
			err = fmt.Errorf("breaker: observer failed: %v", r)
		}
	}()
	o.next.Notify(e)
	return nil
}

// Dispose forwards to the wrapped observer when it is a rlog.Disposer.
func (o *Observer) Dispose() {
	if d, ok := o.next.(rlog.Disposer); ok {
		d.Dispose()
	}
}

// State is the breaker's current state.
func (o *Observer) State() gobreaker.State { return o.cb.State() }

// Skipped counts entries not forwarded because the breaker was open.
func (o *Observer) Skipped() uint64 { return o.skipped.Load() }
