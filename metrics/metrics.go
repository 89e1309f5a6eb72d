// SPDX-License-Identifier: MIT

// Package metrics counts traversal steps and runs in a private Prometheus
// registry and dumps them in the text exposition format.
package metrics

import (
	"bytes"
	"os"
	"time"

	"github.com/katalvlaran/bfsviz/bfs"
	"github.com/katalvlaran/bfsviz/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// State is the snapshot side of a stepper.
type State interface {
	Queue() []core.Path
	Visited() core.Visited
}

// Collector captures metrics for bfsviz runs.
type Collector struct {
	registry    *prometheus.Registry
	stepsTotal  *prometheus.CounterVec
	runsTotal   *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	queueLength prometheus.Gauge
	visited     prometheus.Gauge
	goalPathLen prometheus.Gauge
}

// NewCollector initializes a new metrics registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		registry: registry,
		stepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "bfsviz_steps_total", Help: "Traversal steps by outcome"},
			[]string{"outcome"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "bfsviz_runs_total", Help: "Finished runs by stop reason"},
			[]string{"result"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bfsviz_run_duration_seconds",
				Help:    "Run wall time in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		),
		queueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bfsviz_queue_length", Help: "Paths in the frontier after the last step",
		}),
		visited: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bfsviz_visited_nodes", Help: "Nodes visited so far",
		}),
		goalPathLen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bfsviz_goal_path_length", Help: "Nodes on the discovered goal path",
		}),
	}

	registry.MustRegister(c.stepsTotal, c.runsTotal, c.runDuration, c.queueLength, c.visited, c.goalPathLen)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Observe records one step and the state it left behind.
func (c *Collector) Observe(r bfs.StepResult, s State) {
	c.stepsTotal.WithLabelValues(r.Outcome.String()).Inc()
	if s != nil {
		c.queueLength.Set(float64(len(s.Queue())))
		c.visited.Set(float64(len(s.Visited())))
	}
	if r.Outcome == bfs.OutcomeGoal {
		c.goalPathLen.Set(float64(len(r.Path)))
	}
}

// ObserveRun records a finished run.
func (c *Collector) ObserveRun(result string, duration time.Duration) {
	c.runsTotal.WithLabelValues(result).Inc()
	c.runDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// Write writes all metrics to a Prometheus text file.
func (c *Collector) Write(path string) error {
	metricFamilies, err := c.registry.Gather()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range metricFamilies {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
