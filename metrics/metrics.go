// Package metrics provides Prometheus metrics for variant generation
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variant_generations_total",
			Help: "Total number of generation runs",
		},
		[]string{"collection", "action", "status"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "variant_generation_duration_seconds",
			Help:    "Time taken to load catalogs and generate a variant set",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"collection", "action"},
	)

	VariantsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variants_generated_total",
			Help: "Total number of variants emitted",
		},
		[]string{"collection", "kind"},
	)

	VariantsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variants_skipped_total",
			Help: "Total number of variants skipped by lookup or assembly failures",
		},
		[]string{"collection", "stage"},
	)

	SheetRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "variant_sheet_renders_total",
			Help: "Total number of variant sheet renders",
		},
		[]string{"format", "status"},
	)
)

// RecordGeneration records the outcome of one generation run
func RecordGeneration(collection, action string, started time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	GenerationsTotal.WithLabelValues(collection, action, status).Inc()
	GenerationDuration.WithLabelValues(collection, action).Observe(time.Since(started).Seconds())
}

// RecordVariants records the emitted regular and custom variant counts
func RecordVariants(collection string, regular, custom int) {
	VariantsGenerated.WithLabelValues(collection, "regular").Add(float64(regular))
	VariantsGenerated.WithLabelValues(collection, "custom").Add(float64(custom))
}

// RecordSkipped records one skipped variant
func RecordSkipped(collection, stage string) {
	VariantsSkipped.WithLabelValues(collection, stage).Inc()
}

// RecordSheet records a sheet render
func RecordSheet(format string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	SheetRenders.WithLabelValues(format, status).Inc()
}
