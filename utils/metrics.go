package utils

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nxthdr/sflow-parser/metrics"
)

// PromDecoderWrapper instruments a decoder with traffic and timing metrics.
func PromDecoderWrapper(wrapped DecoderFunc, name string) DecoderFunc {
	return func(msg *Message) error {
		remote := msg.Src.Addr().String()
		localIP := msg.Dst.Addr().String()
		port := fmt.Sprintf("%d", msg.Dst.Port())
		size := len(msg.Payload)

		labels := prometheus.Labels{
			"remote_ip":  remote,
			"local_ip":   localIP,
			"local_port": port,
		}
		metrics.MetricTrafficBytes.With(labels).Add(float64(size))
		metrics.MetricTrafficPackets.With(labels).Inc()
		metrics.MetricPacketSizeSum.With(labels).Observe(float64(size))

		timeTrackStart := time.Now().UTC()
		err := wrapped(msg)
		timeTrackStop := time.Now().UTC()

		metrics.DecoderTime.With(
			prometheus.Labels{
				"name": name,
			}).
			Observe(float64((timeTrackStop.Sub(timeTrackStart)).Nanoseconds()) / 1000)

		metrics.DecoderStats.With(
			prometheus.Labels{
				"worker": name,
			}).
			Inc()
		if err != nil {
			metrics.DecoderErrors.With(
				prometheus.Labels{
					"worker": name,
					"error":  "error_decoding",
				}).
				Inc()
		}
		return err
	}
}
