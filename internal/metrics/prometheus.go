package metrics

import (
	"fmt"
	"path/filepath"

	"github.com/drakos74/census/internal/model"
	"github.com/drakos74/census/internal/report"
	"github.com/prometheus/client_golang/prometheus"
)

// FileName is the text exposition file written to the output directory.
const FileName = "census.prom"

const namespace = "census"

// Prometheus holds the run metrics in a private registry.
type Prometheus struct {
	registry   *prometheus.Registry
	Accuracy   *prometheus.GaugeVec
	Importance *prometheus.GaugeVec
	Rows       *prometheus.GaugeVec
	Duration   prometheus.Gauge
}

// NewPrometheusMetrics creates and registers the run metrics.
func NewPrometheusMetrics() Prometheus {
	p := Prometheus{
		registry: prometheus.NewRegistry(),
		Accuracy: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "accuracy",
				Help:      "test set accuracy of the classifier per pass and target",
			}, []string{"pass", "target", "step"}),
		Importance: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "importance",
				Help:      "feature importance per pass and target",
			}, []string{"pass", "target", "step", "feature"}),
		Rows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rows",
				Help:      "rows left after each cleaning stage",
			}, []string{"stage"}),
		Duration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "duration_seconds",
				Help:      "duration of the analysis run",
			}),
	}
	p.registry.MustRegister(p.Accuracy, p.Importance, p.Rows, p.Duration)
	return p
}

// Observe records the report values.
func (p Prometheus) Observe(r report.Report) {
	p.Rows.WithLabelValues("loaded").Set(float64(r.Cleaning.Rows))
	for _, step := range r.Cleaning.Steps {
		p.Rows.WithLabelValues(string(step.Column)).Set(float64(step.Rows))
	}
	for pass, results := range r.Results {
		for i, result := range results {
			step := "0"
			if pass == model.Forward {
				step = fmt.Sprintf("%d", i+1)
			}
			p.Accuracy.WithLabelValues(string(pass), string(result.Target), step).Set(result.Accuracy)
			for _, imp := range result.Importance {
				p.Importance.WithLabelValues(string(pass), string(result.Target), step, string(imp.Feature)).Set(imp.Value)
			}
		}
	}
	p.Duration.Set(r.Elapsed.Seconds())
}

// Write dumps the metrics in text exposition format into the given directory.
func (p Prometheus) Write(dir string) (string, error) {
	fn := filepath.Join(dir, FileName)
	if err := prometheus.WriteToTextfile(fn, p.registry); err != nil {
		return "", fmt.Errorf("could not write metrics to '%s': %w", fn, err)
	}
	return fn, nil
}
