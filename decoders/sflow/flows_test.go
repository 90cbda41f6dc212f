package sflow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxthdr/sflow-parser/decoders/utils"
)

func TestDecodeSampledHeaderRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1)   // ethernet
	utils.WriteU32(body, 128) // frame length
	utils.WriteU32(body, 4)   // stripped
	utils.WriteOpaque(body, []byte{0xde, 0xad, 0xbe, 0xef, 0x01})

	v, err := decodeSampledHeader(NewCursor(body.Bytes()))
	require.NoError(t, err)
	sh := v.(SampledHeader)
	assert.Equal(t, uint32(1), sh.Protocol)
	assert.Equal(t, uint32(128), sh.FrameLength)
	assert.Equal(t, uint32(4), sh.Stripped)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef, 0x01}, sh.HeaderData)
}

func TestDecodeSampledEthernetRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 64)
	body.Write([]byte{1, 2, 3, 4, 5, 6})
	body.Write([]byte{6, 5, 4, 3, 2, 1})
	utils.WriteU32(body, 0x0800)

	v, err := decodeSampledEthernet(NewCursor(body.Bytes()))
	require.NoError(t, err)
	se := v.(SampledEthernet)
	assert.Equal(t, "01:02:03:04:05:06", se.SrcMac.String())
	assert.Equal(t, "06:05:04:03:02:01", se.DstMac.String())
	assert.Equal(t, uint32(0x0800), se.EthType)
}

func TestDecodeSampledIPv4Record(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1500)
	utils.WriteU32(body, 6) // TCP
	body.Write([]byte{10, 0, 0, 1})
	body.Write([]byte{10, 0, 0, 2})
	utils.WriteU32(body, 443)
	utils.WriteU32(body, 51234)
	utils.WriteU32(body, 0x18)
	utils.WriteU32(body, 0)

	v, err := decodeSampledIPv4(NewCursor(body.Bytes()))
	require.NoError(t, err)
	s := v.(SampledIPv4)
	assert.Equal(t, "10.0.0.1", s.SrcIP.String())
	assert.Equal(t, "10.0.0.2", s.DstIP.String())
	assert.Equal(t, uint32(443), s.SrcPort)
	assert.Equal(t, uint32(0x18), s.TcpFlags)
}

func TestDecodeExtendedSwitchRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 100)
	utils.WriteU32(body, 5)
	utils.WriteU32(body, 200)
	utils.WriteU32(body, 6)

	v, err := decodeExtendedSwitch(NewCursor(body.Bytes()))
	require.NoError(t, err)
	es := v.(ExtendedSwitch)
	assert.Equal(t, ExtendedSwitch{SrcVlan: 100, SrcPriority: 5, DstVlan: 200, DstPriority: 6}, es)
}

func TestDecodeExtendedRouterRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1)
	body.Write([]byte{192, 0, 2, 254})
	utils.WriteU32(body, 24)
	utils.WriteU32(body, 25)

	v, err := decodeExtendedRouter(NewCursor(body.Bytes()))
	require.NoError(t, err)
	er := v.(ExtendedRouter)
	assert.Equal(t, "192.0.2.254", er.NextHop.String())
	assert.Equal(t, uint32(24), er.SrcMaskLen)
	assert.Equal(t, uint32(25), er.DstMaskLen)
}

func TestDecodeExtendedGatewayRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1)
	body.Write([]byte{192, 0, 2, 254})
	utils.WriteU32(body, 65001) // AS
	utils.WriteU32(body, 65002) // src AS
	utils.WriteU32(body, 65003) // src peer AS
	utils.WriteU32(body, 1)     // one path segment
	utils.WriteU32(body, 2)     // AS_SEQUENCE
	utils.WriteU32(body, 3)     // three hops
	utils.WriteU32(body, 64512)
	utils.WriteU32(body, 64513)
	utils.WriteU32(body, 64514)
	utils.WriteU32(body, 2) // two communities
	utils.WriteU32(body, 0xfde80001)
	utils.WriteU32(body, 0xfde80002)
	utils.WriteU32(body, 150) // local pref

	v, err := decodeExtendedGateway(NewCursor(body.Bytes()))
	require.NoError(t, err)
	eg := v.(ExtendedGateway)
	assert.Equal(t, uint32(65001), eg.AS)
	require.Len(t, eg.ASPath, 1)
	assert.Equal(t, uint32(2), eg.ASPath[0].PathType)
	assert.Equal(t, []uint32{64512, 64513, 64514}, eg.ASPath[0].Path)
	assert.Equal(t, []uint32{0xfde80001, 0xfde80002}, eg.Communities)
	assert.Equal(t, uint32(150), eg.LocalPref)
}

func TestDecodeExtendedUserRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 106) // UTF-8 MIB charset
	utils.WriteString(body, "alice")
	utils.WriteU32(body, 106)
	utils.WriteString(body, "bob")

	v, err := decodeExtendedUser(NewCursor(body.Bytes()))
	require.NoError(t, err)
	eu := v.(ExtendedUser)
	assert.Equal(t, "alice", eu.SrcUser)
	assert.Equal(t, "bob", eu.DstUser)
}

func TestDecodeExtendedMplsRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1)
	body.Write([]byte{203, 0, 113, 1})
	utils.WriteU32(body, 2)
	utils.WriteU32(body, 1001)
	utils.WriteU32(body, 1002)
	utils.WriteU32(body, 1)
	utils.WriteU32(body, 2001)

	v, err := decodeExtendedMpls(NewCursor(body.Bytes()))
	require.NoError(t, err)
	em := v.(ExtendedMpls)
	assert.Equal(t, []uint32{1001, 1002}, em.InStack)
	assert.Equal(t, []uint32{2001}, em.OutStack)
}

func TestDecodeExtendedNatRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1)
	body.Write([]byte{10, 0, 0, 1})
	utils.WriteU32(body, 1)
	body.Write([]byte{198, 51, 100, 1})

	v, err := decodeExtendedNat(NewCursor(body.Bytes()))
	require.NoError(t, err)
	en := v.(ExtendedNat)
	assert.Equal(t, "10.0.0.1", en.SrcAddress.String())
	assert.Equal(t, "198.51.100.1", en.DstAddress.String())
}

func TestDecodeExtendedVlanTunnelRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 2)
	utils.WriteU32(body, 0x88a80065)
	utils.WriteU32(body, 0x810000c8)

	v, err := decodeExtendedVlanTunnel(NewCursor(body.Bytes()))
	require.NoError(t, err)
	ev := v.(ExtendedVlanTunnel)
	assert.Equal(t, []uint32{0x88a80065, 0x810000c8}, ev.Stack)
}

func TestDecodeExtended80211RxRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteString(body, "corp-wifi")
	body.Write([]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0, 0}) // padded BSSID
	utils.WriteU32(body, 5) // 802.11n
	utils.WriteU32(body, 36)
	utils.WriteU64(body, 300000000)
	utils.WriteU32(body, 40)
	utils.WriteU32(body, 50)
	utils.WriteU32(body, 120)

	v, err := decodeExtended80211Rx(NewCursor(body.Bytes()))
	require.NoError(t, err)
	er := v.(Extended80211Rx)
	assert.Equal(t, "corp-wifi", er.Ssid)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", er.Bssid.String())
	assert.Equal(t, uint32(36), er.Channel)
	assert.Equal(t, uint64(300000000), er.Speed)
}

func TestDecodeExtended80211AggregationRecord(t *testing.T) {
	inner := &bytes.Buffer{}
	for i := 0; i < 4; i++ {
		utils.WriteU32(inner, uint32(i))
	}
	body := &bytes.Buffer{}
	utils.WriteU32(body, 1) // one PDU
	utils.WriteU32(body, 1) // one record
	utils.WriteU32(body, uint32(NewDataFormat(0, FlowFormatExtSwitch)))
	utils.WriteU32(body, uint32(inner.Len()))
	body.Write(inner.Bytes())

	v, err := decodeExtended80211Aggregation(NewCursor(body.Bytes()))
	require.NoError(t, err)
	ea := v.(Extended80211Aggregation)
	require.Len(t, ea.Pdus, 1)
	require.Len(t, ea.Pdus[0].Records, 1)
	_, ok := ea.Pdus[0].Records[0].Data.(ExtendedSwitch)
	assert.True(t, ok)
}

func TestDecodeExtendedSocketIPv6Record(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteU32(body, 6)
	local := append([]byte{0x20, 0x01, 0x0d, 0xb8}, make([]byte, 11)...)
	local = append(local, 1)
	remote := append([]byte{0x20, 0x01, 0x0d, 0xb8}, make([]byte, 11)...)
	remote = append(remote, 2)
	body.Write(local)
	body.Write(remote)
	utils.WriteU32(body, 8080)
	utils.WriteU32(body, 55000)

	v, err := decodeExtendedSocketIPv6(NewCursor(body.Bytes()))
	require.NoError(t, err)
	es := v.(ExtendedSocketIPv6)
	assert.Equal(t, "2001:db8::1", es.LocalIP.String())
	assert.Equal(t, "2001:db8::2", es.RemoteIP.String())
	assert.Equal(t, uint32(8080), es.LocalPort)
}

func TestDecodeAppOperationRecord(t *testing.T) {
	body := &bytes.Buffer{}
	utils.WriteString(body, "payments")
	utils.WriteString(body, "charge")
	utils.WriteString(body, "currency=EUR")
	utils.WriteString(body, "ok")
	utils.WriteU64(body, 512)
	utils.WriteU64(body, 2048)
	utils.WriteU32(body, 1500)
	utils.WriteU32(body, 0) // SUCCESS

	v, err := decodeAppOperation(NewCursor(body.Bytes()))
	require.NoError(t, err)
	ao := v.(AppOperation)
	assert.Equal(t, "payments", ao.Context.Application)
	assert.Equal(t, "charge", ao.Context.Operation)
	assert.Equal(t, uint64(2048), ao.RespBytes)
	assert.Equal(t, uint32(0), ao.Status)
}

func TestFlowRegistryCoversCatalogue(t *testing.T) {
	formats := []uint32{
		FlowFormatSampledHeader, FlowFormatSampledEthernet, FlowFormatSampledIPv4,
		FlowFormatSampledIPv6, FlowFormatExtSwitch, FlowFormatExtRouter,
		FlowFormatExtGateway, FlowFormatExtUser, FlowFormatExtURL, FlowFormatExtMpls,
		FlowFormatExtNat, FlowFormatExtMplsTunnel, FlowFormatExtMplsVc,
		FlowFormatExtMplsFec, FlowFormatExtMplsLvpFec, FlowFormatExtVlanTunnel,
		FlowFormatExt80211Payload, FlowFormatExt80211Rx, FlowFormatExt80211Tx,
		FlowFormatExt80211Aggregation, FlowFormatExtSocketIPv4, FlowFormatExtSocketIPv6,
		FlowFormatAppOperation, FlowFormatAppParentContext,
	}
	assert.Len(t, flowDecoders, len(formats))
	for _, f := range formats {
		assert.Contains(t, flowDecoders, NewDataFormat(0, f), "format %d", f)
	}
}
