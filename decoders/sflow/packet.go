package sflow

import (
	"encoding/json"
	"fmt"
	"net/netip"

	"github.com/nxthdr/sflow-parser/decoders/utils"
)

// Address type discriminators from the sFlow address union.
const (
	AddressTypeUnknown = 0
	AddressTypeIPv4    = 1
	AddressTypeIPv6    = 2
)

// Address is the decoded sFlow address union. IP is empty when the type is
// unknown.
type Address struct {
	Type uint32          `json:"type"`
	IP   utils.IPAddress `json:"ip,omitempty"`
}

func (a Address) String() string {
	if len(a.IP) == 0 {
		return "unknown"
	}
	ip, _ := netip.AddrFromSlice(a.IP)
	return ip.String()
}

// Datagram is a decoded sFlow version 5 datagram.
type Datagram struct {
	Version        uint32   `json:"version"`
	AgentAddress   Address  `json:"agent-address"`
	SubAgentID     uint32   `json:"sub-agent-id"`
	SequenceNumber uint32   `json:"sequence-number"`
	Uptime         uint32   `json:"uptime"`
	Samples        []Sample `json:"samples"`
}

// MarshalJSON encodes the datagram without triggering MarshalText.
func (d *Datagram) MarshalJSON() ([]byte, error) {
	return json.Marshal(*d) // this is a trick to avoid having the JSON marshaller defaults to MarshalText
}

// MarshalText formats a concise summary of the datagram.
func (d *Datagram) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("sFlow%d agent:%s seq:%d count:%d", d.Version, d.AgentAddress, d.SequenceNumber, len(d.Samples))), nil
}

// Sample is one measurement envelope within a datagram: a flow or counters
// sample in compact or expanded form, or an unknown envelope kept as opaque
// bytes.
type Sample interface {
	SampleFormat() DataFormat
}

// Sample envelope formats within enterprise 0.
const (
	SampleFormatFlow             = 1
	SampleFormatCounters         = 2
	SampleFormatFlowExpanded     = 3
	SampleFormatCountersExpanded = 4
)

// DataSourceExpanded is the split (type, index) data source used by the
// expanded sample forms.
type DataSourceExpanded struct {
	SourceIDType  uint32 `json:"source-id-type"`
	SourceIDIndex uint32 `json:"source-id-index"`
}

// InterfaceExpanded is the split (format, value) interface used by the
// expanded flow sample.
type InterfaceExpanded struct {
	Format uint32 `json:"format"`
	Value  uint32 `json:"value"`
}

// FlowSample is the compact flow sample (enterprise 0, format 1).
type FlowSample struct {
	SequenceNumber uint32       `json:"sequence-number"`
	SourceID       DataSource   `json:"source-id"`
	SamplingRate   uint32       `json:"sampling-rate"`
	SamplePool     uint32       `json:"sample-pool"`
	Drops          uint32       `json:"drops"`
	Input          Interface    `json:"input"`
	Output         Interface    `json:"output"`
	Records        []FlowRecord `json:"records"`
}

func (FlowSample) SampleFormat() DataFormat { return NewDataFormat(0, SampleFormatFlow) }

// CountersSample is the compact counters sample (enterprise 0, format 2).
type CountersSample struct {
	SequenceNumber uint32          `json:"sequence-number"`
	SourceID       DataSource      `json:"source-id"`
	Records        []CounterRecord `json:"records"`
}

func (CountersSample) SampleFormat() DataFormat { return NewDataFormat(0, SampleFormatCounters) }

// FlowSampleExpanded is the expanded flow sample (enterprise 0, format 3).
type FlowSampleExpanded struct {
	SequenceNumber uint32             `json:"sequence-number"`
	SourceID       DataSourceExpanded `json:"source-id"`
	SamplingRate   uint32             `json:"sampling-rate"`
	SamplePool     uint32             `json:"sample-pool"`
	Drops          uint32             `json:"drops"`
	Input          InterfaceExpanded  `json:"input"`
	Output         InterfaceExpanded  `json:"output"`
	Records        []FlowRecord       `json:"records"`
}

func (FlowSampleExpanded) SampleFormat() DataFormat {
	return NewDataFormat(0, SampleFormatFlowExpanded)
}

// CountersSampleExpanded is the expanded counters sample (enterprise 0,
// format 4).
type CountersSampleExpanded struct {
	SequenceNumber uint32             `json:"sequence-number"`
	SourceID       DataSourceExpanded `json:"source-id"`
	Records        []CounterRecord    `json:"records"`
}

func (CountersSampleExpanded) SampleFormat() DataFormat {
	return NewDataFormat(0, SampleFormatCountersExpanded)
}

// UnknownSample holds the body of a sample whose format has no decoder.
type UnknownSample struct {
	Format DataFormat `json:"format"`
	Data   []byte     `json:"data"`
}

func (s UnknownSample) SampleFormat() DataFormat { return s.Format }

// FlowRecord wraps one flow record: its (enterprise, format) key and the
// decoded body, or RawRecord when the key has no decoder.
type FlowRecord struct {
	DataFormat DataFormat  `json:"data-format"`
	Data       interface{} `json:"data"`
}

// CounterRecord wraps one counter record, same shape as FlowRecord.
type CounterRecord struct {
	DataFormat DataFormat  `json:"data-format"`
	Data       interface{} `json:"data"`
}

// RawRecord holds the body of a record whose (enterprise, format) key has no
// decoder. Exactly the declared length of bytes, owned.
type RawRecord struct {
	Data []byte `json:"data"`
}
