package mvcc

import "github.com/prometheus/client_golang/prometheus"

var (
	writerStatusCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "domino",
			Subsystem: "mvcc",
			Name:      "writer_status_total",
			Help:      "Counter of writer status lookups by where the status was found.",
		}, []string{"source"})

	rowWriteCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "domino",
			Subsystem: "mvcc",
			Name:      "row_writes_total",
			Help:      "Counter of row writes and finalizations by type and result.",
		}, []string{"type", "result"})
)

func init() {
	prometheus.MustRegister(writerStatusCounter)
	prometheus.MustRegister(rowWriteCounter)
}
