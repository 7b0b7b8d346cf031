// Package metrics exposes prometheus metrics for the consensus node.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CurrentSlot = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glean_current_slot",
		Help: "The wall-clock slot.",
	})
	HeadSlot = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glean_head_slot",
		Help: "The slot of the fork choice head.",
	})
	LatestJustifiedSlot = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glean_latest_justified_slot",
		Help: "The slot of the latest justified checkpoint.",
	})
	LatestFinalizedSlot = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glean_latest_finalized_slot",
		Help: "The slot of the latest finalized checkpoint.",
	})
	ConnectedPeers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glean_connected_peers",
		Help: "The number of connected libp2p peers.",
	})
	BlocksProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glean_blocks_processed_total",
		Help: "The number of blocks accepted into the fork choice store.",
	})
	BlocksRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glean_blocks_rejected_total",
		Help: "The number of blocks rejected, by reason.",
	}, []string{"reason"})
	AttestationsValid = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glean_attestations_valid_total",
		Help: "The number of valid attestations processed, by source.",
	}, []string{"source"})
	AttestationsInvalid = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glean_attestations_invalid_total",
		Help: "The number of attestations dropped in validation.",
	})
	AttestationValidationTime = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "glean_attestation_validation_seconds",
		Help:    "Time spent validating and recording one attestation.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
	})
	Equivocations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glean_equivocations_total",
		Help: "The number of conflicting votes observed for an already-voted slot.",
	})
	HeadChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glean_head_changed_total",
		Help: "The number of times the fork choice head moved.",
	})
)

// Serve exposes /metrics on the given port. Blocks; run in a goroutine.
func Serve(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
