package host

import (
	"fmt"
	"io"
)

// Consumer is the external listener handle a host registers.
type Consumer interface {
	Accept(line string)
}

// UTF16Consumer receives lines as UTF-16 code units.
type UTF16Consumer interface {
	AcceptUTF16(line []uint16)
}

// ConsumerFunc adapter.
type ConsumerFunc func(string)

func (f ConsumerFunc) Accept(line string) { f(line) }

// WriterConsumer writes each line, newline-terminated, to W.
type WriterConsumer struct{ W io.Writer }

func (c WriterConsumer) Accept(line string) {
	if _, err := fmt.Fprintln(c.W, line); err != nil {
		panic(fmt.Errorf("host: write line: %w", err))
	}
}
