// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "columnsolver",
		Name:      "evaluations_total",
		Help:      "Column evaluations completed, by loading case, shape and regime.",
	}, []string{"case", "shape", "regime"})
	failures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "columnsolver",
		Name:      "evaluation_failures_total",
		Help:      "Column evaluations rejected, by loading case and error kind.",
	}, []string{"case", "kind"})
	importedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "columnsolver",
		Name:      "imported_rows_total",
		Help:      "Spreadsheet rows read by the importer, by outcome.",
	}, []string{"outcome"})
)

func ObserveEvaluation(caseName, shape, regime string) {
	evaluations.WithLabelValues(caseName, shape, regime).Inc()
}

func ObserveFailure(caseName, kind string) {
	if caseName == "" {
		caseName = "unknown"
	}
	failures.WithLabelValues(caseName, kind).Inc()
}

// ObserveImport counts accepted and rejected rows of one import.
func ObserveImport(accepted, rejected int) {
	importedRows.WithLabelValues("accepted").Add(float64(accepted))
	importedRows.WithLabelValues("rejected").Add(float64(rejected))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
