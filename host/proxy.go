package host

import (
	"io"
	"strconv"
	"sync"
	"unicode/utf16"

	"github.com/trickstertwo/rlog"
)

// FormatLine renders e the way listeners receive it.
func FormatLine(e rlog.Entry) string {
	b := make([]byte, 0, 64+len(e.File())+len(e.Function())+len(e.Message()))
	b = append(b, "[level='"...)
	b = append(b, e.Level().String()...)
	b = append(b, "'; file='"...)
	b = append(b, e.File()...)
	b = append(b, "'; line="...)
	b = strconv.AppendInt(b, int64(e.Line()), 10)
	b = append(b, "; function='"...)
	b = append(b, e.Function()...)
	b = append(b, "'] what: "...)
	b = append(b, e.Message()...)
	return string(b)
}

// ListenerProxy owns a reference to an external consumer for as long as it
// is registered. It implements rlog.Observer and rlog.Disposer.
type ListenerProxy struct {
	mu   sync.Mutex
	text Consumer
	wide UTF16Consumer
}

func NewListenerProxy(c Consumer) *ListenerProxy {
	return &ListenerProxy{text: c}
}

func NewUTF16ListenerProxy(c UTF16Consumer) *ListenerProxy {
	return &ListenerProxy{wide: c}
}

// Notify formats e and hands it to the consumer exactly once.
// After Dispose it does nothing.
func (p *ListenerProxy) Notify(e rlog.Entry) {
	p.mu.Lock()
	text, wide := p.text, p.wide
	p.mu.Unlock()

	switch {
	case text != nil:
		text.Accept(FormatLine(e))
	case wide != nil:
		wide.AcceptUTF16(utf16.Encode([]rune(FormatLine(e))))
	}
}

// Dispose releases the consumer, closing it when it is an io.Closer.
func (p *ListenerProxy) Dispose() {
	p.mu.Lock()
	var held any
	if p.text != nil {
		held = p.text
	} else if p.wide != nil {
		held = p.wide
	}
	p.text, p.wide = nil, nil
	p.mu.Unlock()

	if c, ok := held.(io.Closer); ok {
		_ = c.Close()
	}
}

// Disposed reports whether the consumer reference was released.
func (p *ListenerProxy) Disposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text == nil && p.wide == nil
}
