package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// failuresTotal counts failure responses by classification and status.
var failuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "content_api",
	Name:      "failures_total",
	Help:      "Failure responses written by the error mapper, by kind and HTTP status.",
}, []string{"kind", "status"})

// RecordFailure counts one mapped failure response.
func RecordFailure(kind string, status int) {
	failuresTotal.WithLabelValues(kind, strconv.Itoa(status)).Inc()
}
