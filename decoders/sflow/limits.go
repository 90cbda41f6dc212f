package sflow

// Resource caps applied before any allocation proportional to a declared
// length. They bound the work a malicious datagram can request.
const (
	// MaxDatagramBytes bounds the input buffer and any sample body. sFlow
	// travels in single UDP payloads, so 64k covers every datagram an agent
	// can emit.
	MaxDatagramBytes = 65535

	// MaxSamplesPerDatagram bounds the declared sample count of a datagram.
	MaxSamplesPerDatagram = 1024

	// MaxRecordsPerSample bounds the declared record count of a sample.
	MaxRecordsPerSample = 1024

	// MaxRecordBytes bounds the declared length of a single record.
	MaxRecordBytes = 65535

	// MaxStringBytes bounds the declared length of a counted string.
	MaxStringBytes = 65535

	// MaxOpaqueBytes bounds the declared length of a counted opaque.
	MaxOpaqueBytes = 65535

	// MaxArrayElems bounds counted arrays inside records (label stacks,
	// AS path segments, communities, adapters).
	MaxArrayElems = 1024
)
