package coordinator

import (
	"time"

	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	txnCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "domino",
			Subsystem: "coordinator",
			Name:      "requests_total",
			Help:      "Counter of coordinator requests by type and outcome.",
		}, []string{"type", "result"})

	txnDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "domino",
			Subsystem: "coordinator",
			Name:      "handle_duration_seconds",
			Help:      "Bucketed histogram of processing time (s) of coordinator requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
		}, []string{"type"})

	expiredCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "domino",
			Subsystem: "coordinator",
			Name:      "expired_txns_total",
			Help:      "Counter of transactions aborted because their heartbeat expired.",
		})
)

func init() {
	prometheus.MustRegister(txnCounter)
	prometheus.MustRegister(txnDuration)
	prometheus.MustRegister(expiredCounter)
}

func observe(typ string, start time.Time, err error) {
	txnCounter.WithLabelValues(typ, mvcc.Classify(err).String()).Inc()
	txnDuration.WithLabelValues(typ).Observe(time.Since(start).Seconds())
}
