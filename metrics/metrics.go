/*
Package metrics exports rlog pipeline counters to Prometheus.

Metrics (namespace rlog):
  - rlog_entries_accepted_total: entries that passed the gate (counter)
  - rlog_entries_filtered_total: entries dropped by the gate (counter)
  - rlog_entries_evicted_total: retained entries pushed out by newer ones or a shrink (counter)
  - rlog_observer_failures_total: notifications that panicked (counter)
  - rlog_entries_retained: entries currently retained (gauge)
  - rlog_entries_capacity: retention capacity (gauge)

Register with:

	prometheus.MustRegister(metrics.NewCollector(rlog.Instance()))
*/
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/rlog"
)

// Source is what the collector reads; *rlog.Logger satisfies it.
type Source interface {
	Stats() rlog.Stats
	Len() int
	EntriesToKeep() int
}

// Collector reads counters at scrape time; it holds no state of its own.
type Collector struct {
	src Source

	accepted         *prometheus.Desc
	filtered         *prometheus.Desc
	evicted          *prometheus.Desc
	observerFailures *prometheus.Desc
	retained         *prometheus.Desc
	capacity         *prometheus.Desc
}

func NewCollector(src Source) *Collector {
	return &Collector{
		src:              src,
		accepted:         prometheus.NewDesc("rlog_entries_accepted_total", "Entries that passed the gate.", nil, nil),
		filtered:         prometheus.NewDesc("rlog_entries_filtered_total", "Entries dropped by the gate.", nil, nil),
		evicted:          prometheus.NewDesc("rlog_entries_evicted_total", "Retained entries evicted to respect capacity.", nil, nil),
		observerFailures: prometheus.NewDesc("rlog_observer_failures_total", "Observer notifications that failed.", nil, nil),
		retained:         prometheus.NewDesc("rlog_entries_retained", "Entries currently retained.", nil, nil),
		capacity:         prometheus.NewDesc("rlog_entries_capacity", "Retention capacity.", nil, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.accepted
	ch <- c.filtered
	ch <- c.evicted
	ch <- c.observerFailures
	ch <- c.retained
	ch <- c.capacity
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.accepted, prometheus.CounterValue, float64(st.Accepted))
	ch <- prometheus.MustNewConstMetric(c.filtered, prometheus.CounterValue, float64(st.Filtered))
	ch <- prometheus.MustNewConstMetric(c.evicted, prometheus.CounterValue, float64(st.Evicted))
	ch <- prometheus.MustNewConstMetric(c.observerFailures, prometheus.CounterValue, float64(st.ObserverFailures))
	ch <- prometheus.MustNewConstMetric(c.retained, prometheus.GaugeValue, float64(c.src.Len()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.src.EntriesToKeep()))
}
