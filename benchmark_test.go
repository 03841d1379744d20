package rlog

import (
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

// blackhole variables prevent compiler from optimizing away code paths.
var (
	bhLen  int
	bhLine int
)

type nopObserver struct{}

func (nopObserver) Notify(e Entry) {
	bhLen = len(e.Message())
	bhLine = e.Line()
}

func newBenchLogger(threshold Level) *Logger {
	l, err := NewBuilder().
		WithObserver(nopObserver{}).
		WithLevel(threshold).
		Enabled().
		Build()
	if err != nil {
		panic(err)
	}
	return l
}

func BenchmarkSubmit(b *testing.B) {
	l := newBenchLogger(LevelVerbose)
	e := NewEntry("ok", "bench.go", "bench", 1, LevelLog)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Submit(e)
	}
}

func BenchmarkEvent_5Appends(b *testing.B) {
	l := newBenchLogger(LevelVerbose)
	ev := l.At(LevelLog, "bench.go", "bench", 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.Str("a=").
			Int(i).
			Str(" ok=").
			Bool(true).
			Dur(25 * time.Millisecond).
			Commit()
	}
}

func BenchmarkFiltered(b *testing.B) {
	// Threshold log filters verbose right after the gate check.
	l := newBenchLogger(LevelLog)
	ev := l.At(LevelVerbose, "bench.go", "bench", 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ev.Str("not-logged").Commit()
	}
}

func BenchmarkCaptureCallSite(b *testing.B) {
	l := newBenchLogger(LevelVerbose)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Log().Msg("ok")
	}
}

func BenchmarkParallel_Submit(b *testing.B) {
	l := newBenchLogger(LevelVerbose)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ev := l.At(LevelLog, "bench.go", "bench", 1)
		i := 0
		for pb.Next() {
			ev.Str("p").Int(i).Commit()
			i++
		}
	})
}

// Frozen clock removes time reads from the measured path.
func BenchmarkSubmit_FrozenClock(b *testing.B) {
	orig := xclock.Default()
	defer xclock.SetDefault(orig)
	xclock.SetDefault(xclock.NewFrozen(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))

	l := newBenchLogger(LevelVerbose)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.At(LevelLog, "bench.go", "bench", 1).Msg("frozen")
	}
}
