package sflow

import "github.com/nxthdr/sflow-parser/decoders/utils"

// Flow record formats within enterprise 0.
const (
	FlowFormatSampledHeader       = 1
	FlowFormatSampledEthernet     = 2
	FlowFormatSampledIPv4         = 3
	FlowFormatSampledIPv6         = 4
	FlowFormatExtSwitch           = 1001
	FlowFormatExtRouter           = 1002
	FlowFormatExtGateway          = 1003
	FlowFormatExtUser             = 1004
	FlowFormatExtURL              = 1005
	FlowFormatExtMpls             = 1006
	FlowFormatExtNat              = 1007
	FlowFormatExtMplsTunnel       = 1008
	FlowFormatExtMplsVc           = 1009
	FlowFormatExtMplsFec          = 1010
	FlowFormatExtMplsLvpFec       = 1011
	FlowFormatExtVlanTunnel       = 1012
	FlowFormatExt80211Payload     = 1013
	FlowFormatExt80211Rx          = 1014
	FlowFormatExt80211Tx          = 1015
	FlowFormatExt80211Aggregation = 1016
	FlowFormatExtSocketIPv4       = 2100
	FlowFormatExtSocketIPv6       = 2101
	FlowFormatAppOperation        = 2202
	FlowFormatAppParentContext    = 2203
)

type SampledHeader struct {
	Protocol    uint32 `json:"protocol"`
	FrameLength uint32 `json:"frame-length"`
	Stripped    uint32 `json:"stripped"`
	HeaderData  []byte `json:"header-data"`
}

type SampledEthernet struct {
	Length  uint32           `json:"length"`
	SrcMac  utils.MacAddress `json:"src-mac"`
	DstMac  utils.MacAddress `json:"dst-mac"`
	EthType uint32           `json:"eth-type"`
}

type SampledIPv4 struct {
	Length   uint32          `json:"length"`
	Protocol uint32          `json:"protocol"`
	SrcIP    utils.IPAddress `json:"src-ip"`
	DstIP    utils.IPAddress `json:"dst-ip"`
	SrcPort  uint32          `json:"src-port"`
	DstPort  uint32          `json:"dst-port"`
	TcpFlags uint32          `json:"tcp-flags"`
	Tos      uint32          `json:"tos"`
}

type SampledIPv6 struct {
	Length   uint32          `json:"length"`
	Protocol uint32          `json:"protocol"`
	SrcIP    utils.IPAddress `json:"src-ip"`
	DstIP    utils.IPAddress `json:"dst-ip"`
	SrcPort  uint32          `json:"src-port"`
	DstPort  uint32          `json:"dst-port"`
	TcpFlags uint32          `json:"tcp-flags"`
	Priority uint32          `json:"priority"`
}

type ExtendedSwitch struct {
	SrcVlan     uint32
	SrcPriority uint32
	DstVlan     uint32
	DstPriority uint32
}

type ExtendedRouter struct {
	NextHop    Address
	SrcMaskLen uint32
	DstMaskLen uint32
}

// AsPathSegment is one segment of a BGP AS path: a set or sequence of AS
// numbers.
type AsPathSegment struct {
	PathType uint32
	Path     []uint32
}

type ExtendedGateway struct {
	NextHop     Address
	AS          uint32
	SrcAS       uint32
	SrcPeerAS   uint32
	ASPath      []AsPathSegment
	Communities []uint32
	LocalPref   uint32
}

type ExtendedUser struct {
	SrcCharset uint32
	SrcUser    string
	DstCharset uint32
	DstUser    string
}

type ExtendedUrl struct {
	Direction uint32
	Url       string
	Host      string
}

type ExtendedMpls struct {
	NextHop  Address
	InStack  []uint32
	OutStack []uint32
}

type ExtendedNat struct {
	SrcAddress Address
	DstAddress Address
}

type ExtendedMplsTunnel struct {
	TunnelLspName string
	TunnelID      uint32
	TunnelCos     uint32
}

type ExtendedMplsVc struct {
	VcInstanceName string
	VllVcID        uint32
	VcLabel        uint32
	VcCos          uint32
}

type ExtendedMplsFec struct {
	FecAddrPrefix Address
	FecPrefixLen  uint32
}

type ExtendedMplsLvpFec struct {
	FecAddrPrefixLen uint32
}

type ExtendedVlanTunnel struct {
	Stack []uint32
}

type Extended80211Payload struct {
	CipherSuite uint32
	Data        []byte
}

type Extended80211Rx struct {
	Ssid           string
	Bssid          utils.MacAddress
	Version        uint32
	Channel        uint32
	Speed          uint64
	Rsni           uint32
	Rcpi           uint32
	PacketDuration uint32
}

type Extended80211Tx struct {
	Ssid            string
	Bssid           utils.MacAddress
	Version         uint32
	Transmissions   uint32
	PacketDuration  uint32
	RetransDuration uint32
	Channel         uint32
	Speed           uint64
	Power           uint32
}

// Pdu is one aggregated frame within an 802.11 aggregation record.
type Pdu struct {
	Records []FlowRecord
}

type Extended80211Aggregation struct {
	Pdus []Pdu
}

type ExtendedSocketIPv4 struct {
	Protocol   uint32
	LocalIP    utils.IPAddress
	RemoteIP   utils.IPAddress
	LocalPort  uint32
	RemotePort uint32
}

type ExtendedSocketIPv6 struct {
	Protocol   uint32
	LocalIP    utils.IPAddress
	RemoteIP   utils.IPAddress
	LocalPort  uint32
	RemotePort uint32
}

// AppContext names the application operation a transaction record belongs to.
type AppContext struct {
	Application string
	Operation   string
	Attributes  string
}

type AppOperation struct {
	Context     AppContext
	StatusDescr string
	ReqBytes    uint64
	RespBytes   uint64
	DurationUs  uint32
	Status      uint32
}

type AppParentContext struct {
	Context AppContext
}
