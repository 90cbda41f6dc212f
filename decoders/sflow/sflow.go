// Package sflow decodes InMon sFlow version 5 datagrams: XDR-encoded UDP
// payloads carrying packet samples and interface counters.
//
// The decoder is total: every byte sequence yields either a decoded value or
// a typed error, with no panic, out-of-bounds read, or unbounded allocation.
// Decoded values own their bytes; the input buffer may be discarded after a
// call returns.
package sflow

import "errors"

// decodeFramed reads a 32-bit length, carves a child cursor of exactly that
// many bytes, runs fn against the child, and requires the child to be fully
// consumed. An error inside fn never leaves the parent cursor in an undefined
// position: the parent has already committed the framed bytes to the child.
func decodeFramed(c *Cursor, limit uint32, fn func(*Cursor) error) error {
	length, err := c.U32()
	if err != nil {
		return err
	}
	if length > limit {
		return &TooLargeError{Limit: limit, Saw: length}
	}
	sub, err := c.Subcursor(int(length))
	if err != nil {
		return err
	}
	if err := fn(sub); err != nil {
		return err
	}
	if !sub.Done() {
		return &TrailingBytesError{Count: sub.Remaining()}
	}
	return nil
}

// DecodeDatagram decodes a single complete sFlow v5 datagram. Bytes beyond
// the envelope are rejected with TrailingBytesError.
func DecodeDatagram(data []byte) (*Datagram, error) {
	if len(data) > MaxDatagramBytes {
		return nil, &DecoderError{&TooLargeError{Limit: MaxDatagramBytes, Saw: uint32(len(data))}}
	}
	c := NewCursor(data)
	d, err := decodeDatagram(c)
	if err != nil {
		return nil, &DecoderError{err}
	}
	if !c.Done() {
		return nil, &DecoderError{&TrailingBytesError{Count: c.Remaining()}}
	}
	return d, nil
}

// DecodeDatagrams decodes a buffer of concatenated datagrams. sFlow datagrams
// carry no outer length, so each boundary is the cursor position after a
// successful decode. On error the datagrams decoded so far are returned along
// with the number of unconsumed bytes and the error.
func DecodeDatagrams(data []byte) ([]*Datagram, int, error) {
	var datagrams []*Datagram
	c := NewCursor(data)
	for !c.Done() {
		d, err := decodeDatagram(c)
		if err != nil {
			return datagrams, len(data) - c.pos, &DecoderError{err}
		}
		datagrams = append(datagrams, d)
	}
	return datagrams, 0, nil
}

func decodeDatagram(c *Cursor) (*Datagram, error) {
	d := &Datagram{}
	var err error
	if d.Version, err = c.U32(); err != nil {
		return nil, err
	}
	if d.Version != 5 {
		return nil, &UnsupportedVersionError{Version: d.Version}
	}
	if d.AgentAddress, err = c.Address(); err != nil {
		return nil, err
	}
	if err := c.Decode(&d.SubAgentID, &d.SequenceNumber, &d.Uptime); err != nil {
		return nil, err
	}
	count, err := c.ArrayLen(MaxSamplesPerDatagram)
	if err != nil {
		return nil, err
	}
	d.Samples = make([]Sample, count)
	for i := range d.Samples {
		if d.Samples[i], err = decodeSample(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// decodeSample reads one sample envelope: its data format, its framed body,
// and the records within. Formats without a decoder are kept whole as
// UnknownSample so a vendor extension never invalidates the datagram.
func decodeSample(c *Cursor) (Sample, error) {
	var format DataFormat
	if err := c.Decode(&format); err != nil {
		return nil, err
	}
	var sample Sample
	err := decodeFramed(c, MaxDatagramBytes, func(sub *Cursor) error {
		var err error
		if format.Enterprise() != 0 {
			sample, err = decodeUnknownSample(format, sub)
			return err
		}
		switch format.Format() {
		case SampleFormatFlow:
			sample, err = decodeFlowSample(sub)
		case SampleFormatCounters:
			sample, err = decodeCountersSample(sub)
		case SampleFormatFlowExpanded:
			sample, err = decodeFlowSampleExpanded(sub)
		case SampleFormatCountersExpanded:
			sample, err = decodeCountersSampleExpanded(sub)
		default:
			sample, err = decodeUnknownSample(format, sub)
		}
		return err
	})
	if err != nil {
		return nil, &SampleError{format, err}
	}
	return sample, nil
}

func decodeUnknownSample(format DataFormat, c *Cursor) (Sample, error) {
	return UnknownSample{Format: format, Data: c.Rest()}, nil
}

func decodeFlowSample(c *Cursor) (Sample, error) {
	var fs FlowSample
	if err := c.Decode(&fs.SequenceNumber, &fs.SourceID, &fs.SamplingRate,
		&fs.SamplePool, &fs.Drops, &fs.Input, &fs.Output); err != nil {
		return nil, err
	}
	records, err := decodeFlowRecords(c)
	if err != nil {
		return nil, err
	}
	fs.Records = records
	return fs, nil
}

func decodeFlowSampleExpanded(c *Cursor) (Sample, error) {
	var fs FlowSampleExpanded
	if err := c.Decode(&fs.SequenceNumber, &fs.SourceID.SourceIDType, &fs.SourceID.SourceIDIndex,
		&fs.SamplingRate, &fs.SamplePool, &fs.Drops,
		&fs.Input.Format, &fs.Input.Value, &fs.Output.Format, &fs.Output.Value); err != nil {
		return nil, err
	}
	records, err := decodeFlowRecords(c)
	if err != nil {
		return nil, err
	}
	fs.Records = records
	return fs, nil
}

func decodeCountersSample(c *Cursor) (Sample, error) {
	var cs CountersSample
	if err := c.Decode(&cs.SequenceNumber, &cs.SourceID); err != nil {
		return nil, err
	}
	records, err := decodeCounterRecords(c)
	if err != nil {
		return nil, err
	}
	cs.Records = records
	return cs, nil
}

func decodeCountersSampleExpanded(c *Cursor) (Sample, error) {
	var cs CountersSampleExpanded
	if err := c.Decode(&cs.SequenceNumber, &cs.SourceID.SourceIDType, &cs.SourceID.SourceIDIndex); err != nil {
		return nil, err
	}
	records, err := decodeCounterRecords(c)
	if err != nil {
		return nil, err
	}
	cs.Records = records
	return cs, nil
}

func decodeFlowRecords(c *Cursor) ([]FlowRecord, error) {
	count, err := c.ArrayLen(MaxRecordsPerSample)
	if err != nil {
		return nil, err
	}
	records := make([]FlowRecord, count)
	for i := range records {
		if records[i], err = decodeFlowRecord(c); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func decodeCounterRecords(c *Cursor) ([]CounterRecord, error) {
	count, err := c.ArrayLen(MaxRecordsPerSample)
	if err != nil {
		return nil, err
	}
	records := make([]CounterRecord, count)
	for i := range records {
		if records[i], err = decodeCounterRecord(c); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// decodeRecord is the framed dispatch shared by flow and counter records. A
// key missing from the table keeps the framed bytes as RawRecord; a decoder
// that leaves bytes behind is a framing violation, reported rather than
// skipped so a drifting field list cannot silently desynchronize anything.
func decodeRecord(c *Cursor, decoders map[DataFormat]func(*Cursor) (interface{}, error)) (DataFormat, interface{}, error) {
	var format DataFormat
	if err := c.Decode(&format); err != nil {
		return format, nil, err
	}
	var data interface{}
	err := decodeFramed(c, MaxRecordBytes, func(sub *Cursor) error {
		decode, ok := decoders[format]
		if !ok {
			data = RawRecord{Data: sub.Rest()}
			return nil
		}
		var err error
		data, err = decode(sub)
		return err
	})
	if err != nil {
		return format, nil, &RecordError{format, err}
	}
	return format, data, nil
}

func decodeFlowRecord(c *Cursor) (FlowRecord, error) {
	format, data, err := decodeRecord(c, flowDecoders)
	if err != nil {
		return FlowRecord{}, err
	}
	return FlowRecord{DataFormat: format, Data: data}, nil
}

func decodeCounterRecord(c *Cursor) (CounterRecord, error) {
	format, data, err := decodeRecord(c, counterDecoders)
	if err != nil {
		return CounterRecord{}, err
	}
	return CounterRecord{DataFormat: format, Data: data}, nil
}

// ErrorDataFormat reports the record data format an error was raised for, if
// any.
func ErrorDataFormat(err error) (DataFormat, bool) {
	var re *RecordError
	if errors.As(err, &re) {
		return re.DataFormat, true
	}
	return 0, false
}
