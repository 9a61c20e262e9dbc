// Package metrics keeps the counters for a single run, to be written as a Prometheus
// textfile for the node exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "licitaciones"

type Metrics struct {
	registry *prometheus.Registry

	Received   prometheus.Counter
	Duplicates prometheus.Counter
	Appended   prometheus.Counter
	Formatted  prometheus.Counter
	Keywords   prometheus.Gauge
	Created    prometheus.Counter
	LastRun    prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := Metrics{
		registry: prometheus.NewRegistry(),

		Received: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_received_total",
			Help:      "Records handed to the sheet writer.",
		}),
		Duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_duplicates_total",
			Help:      "Records skipped because their ID was already stored.",
		}),
		Appended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_appended_total",
			Help:      "Records appended to a month worksheet.",
		}),
		Formatted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "formatting_requests_total",
			Help:      "Cell formatting requests sent for appended rows.",
		}),
		Keywords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "keywords_loaded",
			Help:      "Keywords loaded from the keywords worksheet.",
		}),
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worksheets_created_total",
			Help:      "Month worksheets created.",
		}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last completed run.",
		}),
	}

	m.registry.MustRegister(m.Received, m.Duplicates, m.Appended, m.Formatted, m.Keywords, m.Created, m.LastRun)

	return &m
}

// Saved adds the outcome of a sheet write.
func (m *Metrics) Saved(received, duplicates, appended, formatted int, created bool) {
	m.Received.Add(float64(received))
	m.Duplicates.Add(float64(duplicates))
	m.Appended.Add(float64(appended))
	m.Formatted.Add(float64(formatted))

	if created {
		m.Created.Inc()
	}
}

// Write stamps the run time and writes the metrics atomically to file.
func (m *Metrics) Write(file string, now time.Time) error {
	m.LastRun.Set(float64(now.Unix()))

	return prometheus.WriteToTextfile(file, m.registry)
}
