package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/rlog"
)

func TestCollectorReflectsPipeline(t *testing.T) {
	t.Parallel()

	l, err := rlog.NewBuilder().
		WithEntriesToKeep(2).
		WithObserver(rlog.ObserverFunc(func(e rlog.Entry) {
			if e.Message() == "bad" {
				panic("sink")
			}
		})).
		WithErrorHandler(func(error) {}).
		Enabled().
		Build()
	require.NoError(t, err)

	for _, m := range []string{"a", "bad", "c"} {
		l.Submit(rlog.NewEntry(m, "f.go", "f", 1, rlog.LevelLog))
	}
	l.Submit(rlog.NewEntry("v", "f.go", "f", 1, rlog.LevelVerbose))

	c := NewCollector(l)
	require.Equal(t, 6, testutil.CollectAndCount(c))

	expected := `
# HELP rlog_entries_accepted_total Entries that passed the gate.
# TYPE rlog_entries_accepted_total counter
rlog_entries_accepted_total 3
# HELP rlog_entries_capacity Retention capacity.
# TYPE rlog_entries_capacity gauge
rlog_entries_capacity 2
# HELP rlog_entries_evicted_total Retained entries evicted to respect capacity.
# TYPE rlog_entries_evicted_total counter
rlog_entries_evicted_total 1
# HELP rlog_entries_filtered_total Entries dropped by the gate.
# TYPE rlog_entries_filtered_total counter
rlog_entries_filtered_total 1
# HELP rlog_entries_retained Entries currently retained.
# TYPE rlog_entries_retained gauge
rlog_entries_retained 2
# HELP rlog_observer_failures_total Observer notifications that failed.
# TYPE rlog_observer_failures_total counter
rlog_observer_failures_total 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollectorRegisters(t *testing.T) {
	t.Parallel()

	l, err := rlog.New(rlog.Config{})
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(l)))
}
