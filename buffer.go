package rlog

import (
	"math"
	"strconv"
	"time"
)

// buffer is a simple growing byte buffer used to accumulate message text.
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }
func (buf *buffer) writeBytes(p []byte)  { buf.b = append(buf.b, p...) }

// Write lets fmt render into the buffer.
func (buf *buffer) Write(p []byte) (int, error) {
	buf.b = append(buf.b, p...)
	return len(p), nil
}

func (buf *buffer) String() string { return string(buf.b) }

// reset empties the buffer, dropping oversized backing arrays.
func (buf *buffer) reset() {
	if cap(buf.b) > 64*1024 {
		buf.b = nil
		return
	}
	buf.b = buf.b[:0]
}

func appendInt64(buf *buffer, v int64)   { buf.b = strconv.AppendInt(buf.b, v, 10) }
func appendUint64(buf *buffer, v uint64) { buf.b = strconv.AppendUint(buf.b, v, 10) }

func appendFloat64(buf *buffer, f float64) {
	switch {
	case math.IsNaN(f):
		buf.writeString("NaN")
	case math.IsInf(f, 1):
		buf.writeString("+Inf")
	case math.IsInf(f, -1):
		buf.writeString("-Inf")
	default:
		buf.b = strconv.AppendFloat(buf.b, f, 'g', -1, 64)
	}
}

func appendBool(buf *buffer, v bool) { buf.b = strconv.AppendBool(buf.b, v) }

func appendDuration(buf *buffer, d time.Duration) { buf.writeString(d.String()) }

func appendRFC3339Nano(buf *buffer, t time.Time) {
	buf.b = t.AppendFormat(buf.b, time.RFC3339Nano)
}
