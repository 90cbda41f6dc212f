// Package metrics exposes Prometheus instrumentation for the receiver and
// decoder pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	NAMESPACE = "sflowparser"
)

var (
	MetricTrafficBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "traffic_bytes",
			Help:      "Bytes received by the application.",
			Namespace: NAMESPACE,
		},
		[]string{"remote_ip", "local_ip", "local_port"},
	)
	MetricTrafficPackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "traffic_packets",
			Help:      "Packets received by the application.",
			Namespace: NAMESPACE},
		[]string{"remote_ip", "local_ip", "local_port"},
	)
	MetricPacketSizeSum = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:      "traffic_summary_size_bytes",
			Help:      "Summary of packet size.",
			Namespace: NAMESPACE, Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"remote_ip", "local_ip", "local_port"},
	)
	DecoderStats = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "decoder_count",
			Help:      "Datagrams processed count.",
			Namespace: NAMESPACE},
		[]string{"worker"},
	)
	DecoderErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "decoder_error_count",
			Help:      "Datagrams in error count.",
			Namespace: NAMESPACE},
		[]string{"worker", "error"},
	)
	DecoderTime = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:      "summary_decoding_time_us",
			Help:      "Decoding time summary.",
			Namespace: NAMESPACE, Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"name"},
	)
	SFlowStats = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "process_sf_count",
			Help:      "sFlow datagrams processed.",
			Namespace: NAMESPACE},
		[]string{"router", "agent", "version"},
	)
	SFlowSampleStatsSum = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "process_sf_samples_sum",
			Help:      "sFlow samples processed.",
			Namespace: NAMESPACE},
		[]string{"router", "agent", "version", "type"},
	)
	SFlowErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "process_sf_errors_count",
			Help:      "sFlow datagrams in error.",
			Namespace: NAMESPACE},
		[]string{"router", "error"},
	)
)

func init() {
	prometheus.MustRegister(MetricTrafficBytes)
	prometheus.MustRegister(MetricTrafficPackets)
	prometheus.MustRegister(MetricPacketSizeSum)
	prometheus.MustRegister(DecoderStats)
	prometheus.MustRegister(DecoderErrors)
	prometheus.MustRegister(DecoderTime)
	prometheus.MustRegister(SFlowStats)
	prometheus.MustRegister(SFlowSampleStatsSum)
	prometheus.MustRegister(SFlowErrors)
}
