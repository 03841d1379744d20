package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/rlog"
)

// Config is an explicit, code-first configuration for a zap sink.
type Config struct {
	Writer             io.Writer             // default: os.Stderr
	Console            bool                  // zapcore.NewConsoleEncoder instead of JSON
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
}

// Build creates a zap-backed Observer from cfg.
func Build(cfg Config) *Observer {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	// Encoder config defaults: do not let zap inject its own time (the entry provides "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeLevel == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return NewWithTimestampKey(zap.New(core), cfg.TimestampFieldName)
}

// Use builds a zap sink, installs it on rlog.Instance() and enables logging.
func Use(cfg Config) *Observer {
	o := Build(cfg)
	l := rlog.Instance()
	l.SetListener(o)
	l.Enable(true)
	return o
}
