package sflow

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxthdr/sflow-parser/decoders/utils"
)

// writeDatagramHeader writes a v5 envelope up to and including the sample
// count.
func writeDatagramHeader(buf *bytes.Buffer, agent []byte, subAgent, seq, uptime, samples uint32) {
	utils.WriteU32(buf, 5)
	if len(agent) == 4 {
		utils.WriteU32(buf, 1)
	} else {
		utils.WriteU32(buf, 2)
	}
	buf.Write(agent)
	utils.WriteU32(buf, subAgent)
	utils.WriteU32(buf, seq)
	utils.WriteU32(buf, uptime)
	utils.WriteU32(buf, samples)
}

// writeFlowSampleBody builds a compact flow sample body declaring count
// records and appending the encoded records.
func writeFlowSampleBody(records *bytes.Buffer, count uint32) *bytes.Buffer {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1)  // sequence
	utils.WriteU32(body, 42) // source id
	utils.WriteU32(body, 1024)
	utils.WriteU32(body, 100000)
	utils.WriteU32(body, 0)
	utils.WriteU32(body, 7) // input
	utils.WriteU32(body, 8) // output
	utils.WriteU32(body, count)
	body.Write(records.Bytes())
	return body
}

func writeRecord(buf *bytes.Buffer, format DataFormat, body []byte) {
	utils.WriteU32(buf, uint32(format))
	utils.WriteU32(buf, uint32(len(body)))
	buf.Write(body)
}

func writeSample(buf *bytes.Buffer, format DataFormat, body []byte) {
	utils.WriteU32(buf, uint32(format))
	utils.WriteU32(buf, uint32(len(body)))
	buf.Write(body)
}

func TestDecodeEmptyDatagram(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x05, // version 5
		0x00, 0x00, 0x00, 0x01, // IPv4 agent
		0x01, 0x02, 0x03, 0x04, // 1.2.3.4
		0x00, 0x00, 0x00, 0x00, // sub-agent
		0x00, 0x00, 0x00, 0x00, // sequence
		0x12, 0x34, 0x56, 0x78, // uptime
		0x00, 0x00, 0x00, 0x00, // no samples
	}
	d, err := DecodeDatagram(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), d.Version)
	assert.Equal(t, "1.2.3.4", d.AgentAddress.String())
	assert.Equal(t, uint32(0), d.SubAgentID)
	assert.Equal(t, uint32(0), d.SequenceNumber)
	assert.Equal(t, uint32(0x12345678), d.Uptime)
	assert.Empty(t, d.Samples)
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01}
	_, err := DecodeDatagram(data)
	var uv *UnsupportedVersionError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, uint32(4), uv.Version)
}

func TestDecodeTruncatedHeader(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x01,
		0x01, 0x02, 0x03, 0x04,
	}
	_, err := DecodeDatagram(data)
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
}

func TestDecodeUnknownRecordKeptAsOpaque(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	records := &bytes.Buffer{}
	writeRecord(records, DataFormat(999999), payload)

	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	writeSample(buf, NewDataFormat(0, SampleFormatFlow), writeFlowSampleBody(records, 1).Bytes())

	d, err := DecodeDatagram(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, d.Samples, 1)
	fs, ok := d.Samples[0].(FlowSample)
	require.True(t, ok)
	require.Len(t, fs.Records, 1)
	assert.Equal(t, DataFormat(999999), fs.Records[0].DataFormat)
	raw, ok := fs.Records[0].Data.(RawRecord)
	require.True(t, ok)
	assert.Equal(t, payload, raw.Data)
}

func TestDecodeSampleCountCap(t *testing.T) {
	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 0xffffffff)

	_, err := DecodeDatagram(buf.Bytes())
	var tooMany *TooManyError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, uint32(MaxSamplesPerDatagram), tooMany.Limit)
	assert.Equal(t, uint32(0xffffffff), tooMany.Saw)
}

func TestDecodeRecordTrailingBytes(t *testing.T) {
	// extended switch body is 16 bytes; declare 20 and pad with 4 extra
	body := &bytes.Buffer{}
	for i := 0; i < 5; i++ {
		utils.WriteU32(body, uint32(i))
	}
	records := &bytes.Buffer{}
	writeRecord(records, NewDataFormat(0, FlowFormatExtSwitch), body.Bytes())

	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	writeSample(buf, NewDataFormat(0, SampleFormatFlow), writeFlowSampleBody(records, 1).Bytes())

	_, err := DecodeDatagram(buf.Bytes())
	var trailing *TrailingBytesError
	require.ErrorAs(t, err, &trailing)
	assert.Equal(t, 4, trailing.Count)

	format, ok := ErrorDataFormat(err)
	require.True(t, ok)
	assert.Equal(t, NewDataFormat(0, FlowFormatExtSwitch), format)
}

func TestDecodeRecordShortDeclaredLength(t *testing.T) {
	// declared length cuts the extended switch body at 12 of 16 bytes; the
	// failure must stay inside the record and not claim bytes past the frame
	body := &bytes.Buffer{}
	for i := 0; i < 3; i++ {
		utils.WriteU32(body, uint32(i))
	}
	records := &bytes.Buffer{}
	writeRecord(records, NewDataFormat(0, FlowFormatExtSwitch), body.Bytes())

	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	writeSample(buf, NewDataFormat(0, SampleFormatFlow), writeFlowSampleBody(records, 1).Bytes())

	_, err := DecodeDatagram(buf.Bytes())
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
	assert.Equal(t, 0, trunc.Have)
}

func TestDecodeSampleLengthPastEnvelope(t *testing.T) {
	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	utils.WriteU32(buf, uint32(NewDataFormat(0, SampleFormatFlow)))
	utils.WriteU32(buf, 4096) // longer than what follows
	buf.Write([]byte{0, 0, 0, 0})

	_, err := DecodeDatagram(buf.Bytes())
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
}

func TestDecodeDatagramDeclaringMoreSamplesThanPresent(t *testing.T) {
	records := &bytes.Buffer{}
	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 2)
	writeSample(buf, NewDataFormat(0, SampleFormatFlow), writeFlowSampleBody(records, 0).Bytes())

	_, err := DecodeDatagram(buf.Bytes())
	var trunc *TruncatedError
	require.ErrorAs(t, err, &trunc)
}

func TestDecodeUnknownSample(t *testing.T) {
	body := []byte{0xca, 0xfe, 0xba, 0xbe}
	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	writeSample(buf, NewDataFormat(4413, 5), body)

	d, err := DecodeDatagram(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, d.Samples, 1)
	unknown, ok := d.Samples[0].(UnknownSample)
	require.True(t, ok)
	assert.Equal(t, NewDataFormat(4413, 5), unknown.Format)
	assert.Equal(t, body, unknown.Data)
}

func TestDecodeDatagramTrailingBytes(t *testing.T) {
	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 0)
	buf.Write([]byte{0xde, 0xad})

	_, err := DecodeDatagram(buf.Bytes())
	var trailing *TrailingBytesError
	require.ErrorAs(t, err, &trailing)
	assert.Equal(t, 2, trailing.Count)
}

func TestDecodeDatagramTooLarge(t *testing.T) {
	_, err := DecodeDatagram(make([]byte, MaxDatagramBytes+1))
	var tooLarge *TooLargeError
	require.ErrorAs(t, err, &tooLarge)
}

func TestDecodeExpandedFlowSample(t *testing.T) {
	records := &bytes.Buffer{}
	body := &bytes.Buffer{}
	utils.WriteU32(body, 9)        // sequence
	utils.WriteU32(body, 0)        // source type
	utils.WriteU32(body, 0x123456) // source index
	utils.WriteU32(body, 2048)     // rate
	utils.WriteU32(body, 4096)     // pool
	utils.WriteU32(body, 1)        // drops
	utils.WriteU32(body, 0)        // input format
	utils.WriteU32(body, 0x400000) // input value
	utils.WriteU32(body, 0)        // output format
	utils.WriteU32(body, 3)        // output value
	utils.WriteU32(body, 0)        // no records
	body.Write(records.Bytes())

	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 3, 7, 1000, 1)
	writeSample(buf, NewDataFormat(0, SampleFormatFlowExpanded), body.Bytes())

	d, err := DecodeDatagram(buf.Bytes())
	require.NoError(t, err)
	fs, ok := d.Samples[0].(FlowSampleExpanded)
	require.True(t, ok)
	assert.Equal(t, uint32(9), fs.SequenceNumber)
	assert.Equal(t, uint32(0x123456), fs.SourceID.SourceIDIndex)
	assert.Equal(t, uint32(0x400000), fs.Input.Value)
	assert.Empty(t, fs.Records)
}

func TestDecodeCountersSample(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 5)  // ifIndex
	utils.WriteU32(body, 6)  // ifType
	utils.WriteU64(body, 1e9)
	utils.WriteU32(body, 1)
	utils.WriteU32(body, 3)
	utils.WriteU64(body, 123456789)
	for i := 0; i < 6; i++ {
		utils.WriteU32(body, uint32(i))
	}
	utils.WriteU64(body, 987654321)
	for i := 0; i < 6; i++ {
		utils.WriteU32(body, uint32(i))
	}
	records := &bytes.Buffer{}
	writeRecord(records, NewDataFormat(0, CounterFormatGenericInterface), body.Bytes())

	sampleBody := &bytes.Buffer{}
	utils.WriteU32(sampleBody, 11) // sequence
	utils.WriteU32(sampleBody, 5)  // source id
	utils.WriteU32(sampleBody, 1)  // one record
	sampleBody.Write(records.Bytes())

	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	writeSample(buf, NewDataFormat(0, SampleFormatCounters), sampleBody.Bytes())

	d, err := DecodeDatagram(buf.Bytes())
	require.NoError(t, err)
	cs, ok := d.Samples[0].(CountersSample)
	require.True(t, ok)
	require.Len(t, cs.Records, 1)
	ic, ok := cs.Records[0].Data.(IfCounters)
	require.True(t, ok)
	assert.Equal(t, uint32(5), ic.IfIndex)
	assert.Equal(t, uint64(1e9), ic.IfSpeed)
	assert.Equal(t, uint64(123456789), ic.IfInOctets)
	assert.Equal(t, uint64(987654321), ic.IfOutOctets)
}

func TestDecodeDatagramsConcatenated(t *testing.T) {
	one := &bytes.Buffer{}
	writeDatagramHeader(one, []byte{192, 0, 2, 1}, 0, 1, 1000, 0)
	two := &bytes.Buffer{}
	writeDatagramHeader(two, []byte{192, 0, 2, 2}, 0, 2, 2000, 0)

	data := append(one.Bytes(), two.Bytes()...)
	datagrams, remaining, err := DecodeDatagrams(data)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	require.Len(t, datagrams, 2)
	assert.Equal(t, "192.0.2.1", datagrams[0].AgentAddress.String())
	assert.Equal(t, "192.0.2.2", datagrams[1].AgentAddress.String())
	assert.Equal(t, uint32(2), datagrams[1].SequenceNumber)
}

func TestDecodeDatagramsPartial(t *testing.T) {
	one := &bytes.Buffer{}
	writeDatagramHeader(one, []byte{192, 0, 2, 1}, 0, 1, 1000, 0)
	data := append(one.Bytes(), 0x00, 0x00) // short second datagram

	datagrams, remaining, err := DecodeDatagrams(data)
	require.Error(t, err)
	require.Len(t, datagrams, 1)
	assert.Equal(t, 2, remaining)
}

func TestDecodeDatagramsEmpty(t *testing.T) {
	datagrams, remaining, err := DecodeDatagrams(nil)
	require.NoError(t, err)
	assert.Empty(t, datagrams)
	assert.Equal(t, 0, remaining)
}

func TestDecodeOwnedValues(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	records := &bytes.Buffer{}
	writeRecord(records, DataFormat(999999), payload)

	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	writeSample(buf, NewDataFormat(0, SampleFormatFlow), writeFlowSampleBody(records, 1).Bytes())

	data := buf.Bytes()
	d, err := DecodeDatagram(data)
	require.NoError(t, err)
	for i := range data {
		data[i] = 0xff
	}
	fs := d.Samples[0].(FlowSample)
	raw := fs.Records[0].Data.(RawRecord)
	assert.Equal(t, []byte{1, 2, 3, 4}, raw.Data)
	assert.Equal(t, "192.0.2.1", d.AgentAddress.String())
}

func TestDatagramMarshal(t *testing.T) {
	buf := &bytes.Buffer{}
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 9, 1000, 0)
	d, err := DecodeDatagram(buf.Bytes())
	require.NoError(t, err)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sFlow5 agent:192.0.2.1 seq:9 count:0", string(text))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"agent-address":{"type":1,"ip":"192.0.2.1"}`)
}

func TestDecodeNoPanicOnGarbage(t *testing.T) {
	// deterministic sweep of corrupted prefixes; decode must always return
	buf := &bytes.Buffer{}
	records := &bytes.Buffer{}
	writeRecord(records, NewDataFormat(0, FlowFormatExtSwitch), make([]byte, 16))
	writeDatagramHeader(buf, []byte{192, 0, 2, 1}, 0, 1, 1000, 1)
	writeSample(buf, NewDataFormat(0, SampleFormatFlow), writeFlowSampleBody(records, 1).Bytes())
	valid := buf.Bytes()

	for cut := 0; cut <= len(valid); cut++ {
		DecodeDatagram(valid[:cut])
	}
	for i := 0; i < len(valid); i++ {
		mutated := append([]byte(nil), valid...)
		mutated[i] ^= 0xff
		DecodeDatagram(mutated)
	}
}
