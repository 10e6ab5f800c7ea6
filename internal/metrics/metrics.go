// Package metrics instruments runs with prometheus collectors. The
// registry is process-local and dumped as text on demand; nothing is
// served over the network.
package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/aretw0/loom/pkg/machine"
)

// Collector implements loom.Collector on a private prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	steps    prometheus.Counter
	runSteps prometheus.Histogram
	cells    prometheus.Gauge
}

// New builds a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loom_runs_total",
			Help: "Completed runs partitioned by terminal status.",
		}, []string{"status"}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loom_steps_total",
			Help: "Simulation steps taken across all runs.",
		}),
		runSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loom_run_steps",
			Help:    "Steps per completed run.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "loom_tape_cells",
			Help: "Materialized tape cells at the end of the last run.",
		}),
	}
	c.registry.MustRegister(c.runs, c.steps, c.runSteps, c.cells)
	return c
}

// RunStarted is part of loom.Collector.
func (c *Collector) RunStarted() {}

// StepTaken is part of loom.Collector.
func (c *Collector) StepTaken() {
	c.steps.Inc()
}

// RunFinished is part of loom.Collector.
func (c *Collector) RunFinished(status machine.Status, steps, tapeCells int) {
	c.runs.WithLabelValues(status.String()).Inc()
	c.runSteps.Observe(float64(steps))
	c.cells.Set(float64(tapeCells))
}

// Dump writes the gathered metrics as sorted name{labels} value lines;
// histograms are written as name count=N sum=S.
func (c *Collector) Dump(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			lines = append(lines, renderMetric(family, metric))
		}
	}
	sort.Strings(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderMetric(family *dto.MetricFamily, metric *dto.Metric) string {
	name := family.GetName()
	if labels := metric.GetLabel(); len(labels) > 0 {
		pairs := make([]string, 0, len(labels))
		for _, label := range labels {
			pairs = append(pairs, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
		}
		name += "{" + strings.Join(pairs, ",") + "}"
	}

	switch family.GetType() {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%s %g", name, metric.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%s %g", name, metric.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := metric.GetHistogram()
		return fmt.Sprintf("%s count=%d sum=%g", name, h.GetSampleCount(), h.GetSampleSum())
	}
	return fmt.Sprintf("%s ?", name)
}
