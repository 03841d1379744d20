package zapadapter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/rlog"
)

// Observer forwards accepted rlog entries to a zap.Logger.
//
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Writes the entry's capture time as tsKey with RFC3339Nano precision.
//   - Dispose flushes buffered output with Sync.
type Observer struct {
	l     *zap.Logger
	tsKey string
}

// New creates an observer for the provided zap logger.
func New(l *zap.Logger) *Observer {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Observer {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Observer{l: l, tsKey: tsKey}
}

func (o *Observer) Notify(e rlog.Entry) {
	ce := o.l.Check(toZapLevel(e.Level()), e.Message())
	if ce == nil {
		return
	}
	ce.Write(
		zap.String(o.tsKey, e.At().UTC().Format(time.RFC3339Nano)),
		zap.String("file", e.File()),
		zap.String("function", e.Function()),
		zap.Int("line", e.Line()),
	)
}

// Dispose flushes the logger. Sync errors on terminals (EINVAL on stderr)
// are expected and ignored.
func (o *Observer) Dispose() {
	_ = o.l.Sync()
}

func toZapLevel(l rlog.Level) zapcore.Level {
	if l <= rlog.LevelVerbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
