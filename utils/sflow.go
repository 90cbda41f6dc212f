package utils

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/nxthdr/sflow-parser/decoders/sflow"
	"github.com/nxthdr/sflow-parser/format"
	"github.com/nxthdr/sflow-parser/metrics"
	"github.com/nxthdr/sflow-parser/transport"
)

// StateSFlow decodes sFlow datagrams and forwards them through a format and
// a transport.
type StateSFlow struct {
	Format    format.FormatInterface
	Transport transport.TransportInterface

	Logger *log.Logger
}

// NewSFlowPipe builds an sFlow decoding pipe.
func NewSFlowPipe(formatter format.FormatInterface, transporter transport.TransportInterface, logger *log.Logger) *StateSFlow {
	return &StateSFlow{
		Format:    formatter,
		Transport: transporter,
		Logger:    logger,
	}
}

// DecodeFlow decodes one received payload and ships the result.
func (s *StateSFlow) DecodeFlow(msg *Message) error {
	key := msg.Src.Addr().String()

	datagram, err := sflow.DecodeDatagram(msg.Payload)
	if err != nil {
		metrics.SFlowErrors.With(
			prometheus.Labels{
				"router": key,
				"error":  "error_decoding",
			}).
			Inc()
		return err
	}

	agent := datagram.AgentAddress.String()
	version := fmt.Sprintf("%d", datagram.Version)
	metrics.SFlowStats.With(
		prometheus.Labels{
			"router":  key,
			"agent":   agent,
			"version": version,
		}).
		Inc()
	for _, sample := range datagram.Samples {
		metrics.SFlowSampleStatsSum.With(
			prometheus.Labels{
				"router":  key,
				"agent":   agent,
				"version": version,
				"type":    sample.SampleFormat().String(),
			}).
			Inc()
	}

	if s.Format == nil {
		return nil
	}
	k, data, err := s.Format.Format(datagram)
	if err != nil {
		return err
	}
	if s.Transport == nil {
		return nil
	}
	if k == nil {
		k = []byte(key)
	}
	return s.Transport.Send(k, data)
}
