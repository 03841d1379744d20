package rlog

import (
	"fmt"
	"os"
)

// Observer is notified synchronously for each accepted entry.
// Notify runs while the Logger is locked: it must not call back into it.
type Observer interface {
	Notify(e Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) Notify(e Entry) { f(e) }

// Disposer is an optional interface for observers that hold an external
// reference. Logger calls Dispose exactly once, when the observer is replaced
// or cleared.
type Disposer interface {
	Dispose()
}

// ErrorHandler receives failures the Logger absorbs instead of returning.
type ErrorHandler func(error)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "rlog error: %v\n", err) }

func dispose(o Observer) {
	if d, ok := o.(Disposer); ok {
		d.Dispose()
	}
}
