package slogadapter

import (
	"io"
	"log/slog"
	"testing"

	"github.com/trickstertwo/rlog"
)

func BenchmarkSlogObserver_JSON(b *testing.B) {
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo})
	o := New(slog.New(handler))
	e := rlog.NewEntry("bench", "bench.go", "bench", 1, rlog.LevelLog)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.Notify(e)
	}
}

func BenchmarkSlogObserver_Text(b *testing.B) {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo})
	o := New(slog.New(handler))
	e := rlog.NewEntry("bench", "bench.go", "bench", 1, rlog.LevelLog)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.Notify(e)
	}
}
