package sflow

import "fmt"

// DataFormat packs an enterprise namespace and a format code into a single
// 32-bit word: top 20 bits enterprise, low 12 bits format.
type DataFormat uint32

// NewDataFormat packs an (enterprise, format) pair.
func NewDataFormat(enterprise, format uint32) DataFormat {
	return DataFormat(enterprise<<12 | format&0xfff)
}

// Enterprise returns the 20-bit vendor namespace (0 for standard sFlow).
func (f DataFormat) Enterprise() uint32 {
	return uint32(f) >> 12
}

// Format returns the 12-bit record-type code within the enterprise.
func (f DataFormat) Format() uint32 {
	return uint32(f) & 0xfff
}

func (f DataFormat) String() string {
	return fmt.Sprintf("%d:%d", f.Enterprise(), f.Format())
}

// DataSource identifies the entity a sample concerns: top 8 bits source
// type, low 24 bits index.
type DataSource uint32

// NewDataSource packs a (source type, index) pair.
func NewDataSource(sourceType, index uint32) DataSource {
	return DataSource(sourceType<<24 | index&0xffffff)
}

// SourceType returns the sFlowDataSource type (0 = ifIndex, 1 = smonVlan,
// 2 = entPhysicalEntry).
func (s DataSource) SourceType() uint32 {
	return uint32(s) >> 24
}

// Index returns the 24-bit index value.
func (s DataSource) Index() uint32 {
	return uint32(s) & 0xffffff
}

func (s DataSource) String() string {
	return fmt.Sprintf("%d:%d", s.SourceType(), s.Index())
}

// Interface format codes (top 2 bits of the packed word).
const (
	InterfaceFormatSingle    = 0
	InterfaceFormatDiscarded = 1
	InterfaceFormatMultiple  = 2
)

// Interface is the compact interface encoding: top 2 bits format, low 30
// bits value.
type Interface uint32

// NewInterface packs a (format, value) pair.
func NewInterface(format, value uint32) Interface {
	return Interface(format<<30 | value&0x3fffffff)
}

// Format returns the 2-bit format code.
func (i Interface) Format() uint32 {
	return uint32(i) >> 30
}

// Value returns the 30-bit value: an ifIndex, a discard reason, or a
// destination count depending on Format.
func (i Interface) Value() uint32 {
	return uint32(i) & 0x3fffffff
}

// IsSingle reports whether the value is a plain ifIndex.
func (i Interface) IsSingle() bool {
	return i.Format() == InterfaceFormatSingle
}

// IsDiscarded reports whether the packet was discarded; Value is the reason.
func (i Interface) IsDiscarded() bool {
	return i.Format() == InterfaceFormatDiscarded
}

// IsMultiple reports whether the packet went to multiple interfaces; Value
// is the count.
func (i Interface) IsMultiple() bool {
	return i.Format() == InterfaceFormatMultiple
}
