package rlog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when the retention capacity is not positive.
	ErrInvalidCapacity = errors.New("rlog: entries to keep must be positive")
	ErrUnknownLevel    = errors.New("rlog: unknown level")
	ErrObserverPanic   = errors.New("rlog: observer panicked")
)

// ObserverError reports a failed notification. The entry it carries was
// already retained when the observer failed.
type ObserverError struct {
	Entry Entry
	Value any
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("rlog: observer panicked on %s entry from %s:%d: %v",
		e.Entry.Level(), e.Entry.File(), e.Entry.Line(), e.Value)
}

func (e *ObserverError) Unwrap() error { return ErrObserverPanic }
