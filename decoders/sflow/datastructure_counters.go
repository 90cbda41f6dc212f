package sflow

import "github.com/nxthdr/sflow-parser/decoders/utils"

// Counter record formats within enterprise 0.
const (
	CounterFormatGenericInterface = 1
	CounterFormatEthernet         = 2
	CounterFormatTokenRing        = 3
	CounterFormatVg100            = 4
	CounterFormatVlan             = 5
	CounterFormatIeee80211        = 6
	CounterFormatProcessor        = 1001
	CounterFormatRadioUtilization = 1002
	CounterFormatOpenFlowPort     = 1004
	CounterFormatOpenFlowPortName = 1005
	CounterFormatHostDescription  = 2000
	CounterFormatHostAdapters     = 2001
	CounterFormatHostParent       = 2002
	CounterFormatHostCpu          = 2003
	CounterFormatHostMemory       = 2004
	CounterFormatHostDiskIO       = 2005
	CounterFormatHostNetIO        = 2006
	CounterFormatVirtualNode      = 2100
	CounterFormatVirtualCpu       = 2101
	CounterFormatVirtualMemory    = 2102
	CounterFormatVirtualDiskIO    = 2103
	CounterFormatVirtualNetIO     = 2104
	CounterFormatAppOperations    = 2202
	CounterFormatAppResources     = 2203
	CounterFormatAppWorkers       = 2206
)

type IfCounters struct {
	IfIndex            uint32
	IfType             uint32
	IfSpeed            uint64
	IfDirection        uint32
	IfStatus           uint32
	IfInOctets         uint64
	IfInUcastPkts      uint32
	IfInMulticastPkts  uint32
	IfInBroadcastPkts  uint32
	IfInDiscards       uint32
	IfInErrors         uint32
	IfInUnknownProtos  uint32
	IfOutOctets        uint64
	IfOutUcastPkts     uint32
	IfOutMulticastPkts uint32
	IfOutBroadcastPkts uint32
	IfOutDiscards      uint32
	IfOutErrors        uint32
	IfPromiscuousMode  uint32
}

type EthernetCounters struct {
	Dot3StatsAlignmentErrors           uint32
	Dot3StatsFCSErrors                 uint32
	Dot3StatsSingleCollisionFrames     uint32
	Dot3StatsMultipleCollisionFrames   uint32
	Dot3StatsSQETestErrors             uint32
	Dot3StatsDeferredTransmissions     uint32
	Dot3StatsLateCollisions            uint32
	Dot3StatsExcessiveCollisions       uint32
	Dot3StatsInternalMacTransmitErrors uint32
	Dot3StatsCarrierSenseErrors        uint32
	Dot3StatsFrameTooLongs             uint32
	Dot3StatsInternalMacReceiveErrors  uint32
	Dot3StatsSymbolErrors              uint32
}

type TokenRingCounters struct {
	Dot5StatsLineErrors         uint32
	Dot5StatsBurstErrors        uint32
	Dot5StatsACErrors           uint32
	Dot5StatsAbortTransErrors   uint32
	Dot5StatsInternalErrors     uint32
	Dot5StatsLostFrameErrors    uint32
	Dot5StatsReceiveCongestions uint32
	Dot5StatsFrameCopiedErrors  uint32
	Dot5StatsTokenErrors        uint32
	Dot5StatsSoftErrors         uint32
	Dot5StatsHardErrors         uint32
	Dot5StatsSignalLoss         uint32
	Dot5StatsTransmitBeacons    uint32
	Dot5StatsRecoverys          uint32
	Dot5StatsLobeWires          uint32
	Dot5StatsRemoves            uint32
	Dot5StatsSingles            uint32
	Dot5StatsFreqErrors         uint32
}

type Vg100Counters struct {
	Dot12InHighPriorityFrames    uint32
	Dot12InHighPriorityOctets    uint64
	Dot12InNormPriorityFrames    uint32
	Dot12InNormPriorityOctets    uint64
	Dot12InIPMErrors             uint32
	Dot12InOversizeFrameErrors   uint32
	Dot12InDataErrors            uint32
	Dot12InNullAddressedFrames   uint32
	Dot12OutHighPriorityFrames   uint32
	Dot12OutHighPriorityOctets   uint64
	Dot12TransitionIntoTrainings uint32
	Dot12HCInHighPriorityOctets  uint64
	Dot12HCInNormPriorityOctets  uint64
	Dot12HCOutHighPriorityOctets uint64
}

type VlanCounters struct {
	VlanID        uint32
	Octets        uint64
	UcastPkts     uint32
	MulticastPkts uint32
	BroadcastPkts uint32
	Discards      uint32
}

type Ieee80211Counters struct {
	Dot11TransmittedFragmentCount       uint32
	Dot11MulticastTransmittedFrameCount uint32
	Dot11FailedCount                    uint32
	Dot11RetryCount                     uint32
	Dot11MultipleRetryCount             uint32
	Dot11FrameDuplicateCount            uint32
	Dot11RTSSuccessCount                uint32
	Dot11RTSFailureCount                uint32
	Dot11ACKFailureCount                uint32
	Dot11ReceivedFragmentCount          uint32
	Dot11MulticastReceivedFrameCount    uint32
	Dot11FCSErrorCount                  uint32
	Dot11TransmittedFrameCount          uint32
	Dot11WEPUndecryptableCount          uint32
	Dot11QoSDiscardedFragmentCount      uint32
	Dot11AssociatedStationCount         uint32
	Dot11QoSCFPollsReceivedCount        uint32
	Dot11QoSCFPollsUnusedCount          uint32
	Dot11QoSCFPollsUnusableCount        uint32
	Dot11QoSCFPollsLostCount            uint32
}

type ProcessorCounters struct {
	Cpu5s       uint32
	Cpu1m       uint32
	Cpu5m       uint32
	TotalMemory uint64
	FreeMemory  uint64
}

type RadioUtilization struct {
	ElapsedTime       uint32
	OnChannelTime     uint32
	OnChannelBusyTime uint32
}

type OpenFlowPort struct {
	DatapathID uint64
	PortNo     uint32
}

type OpenFlowPortName struct {
	PortName string
}

type HostDescription struct {
	Hostname    string
	UUID        []byte
	MachineType uint32
	OsName      uint32
	OsRelease   string
}

// HostAdapter describes one physical network adapter of a host.
type HostAdapter struct {
	IfIndex      uint32
	MacAddresses []utils.MacAddress
}

type HostAdapters struct {
	Adapters []HostAdapter
}

type HostParent struct {
	ContainerType  uint32
	ContainerIndex uint32
}

type HostCpu struct {
	LoadOne     uint32
	LoadFive    uint32
	LoadFifteen uint32
	ProcRun     uint32
	ProcTotal   uint32
	CpuNum      uint32
	CpuSpeed    uint32
	Uptime      uint32
	CpuUser     uint32
	CpuNice     uint32
	CpuSystem   uint32
	CpuIdle     uint32
	CpuWio      uint32
	CpuIntr     uint32
	CpuSintr    uint32
	Interrupts  uint32
	Contexts    uint32
}

type HostMemory struct {
	MemTotal   uint64
	MemFree    uint64
	MemShared  uint64
	MemBuffers uint64
	MemCached  uint64
	SwapTotal  uint64
	SwapFree   uint64
	PageIn     uint32
	PageOut    uint32
	SwapIn     uint32
	SwapOut    uint32
}

type HostDiskIO struct {
	DiskTotal    uint64
	DiskFree     uint64
	PartMaxUsed  uint32
	Reads        uint32
	BytesRead    uint64
	ReadTime     uint32
	Writes       uint32
	BytesWritten uint64
	WriteTime    uint32
}

type HostNetIO struct {
	BytesIn  uint64
	PktsIn   uint32
	ErrsIn   uint32
	DropsIn  uint32
	BytesOut uint64
	PktsOut  uint32
	ErrsOut  uint32
	DropsOut uint32
}

type VirtualNode struct {
	Mhz        uint32
	Cpus       uint32
	Memory     uint64
	MemoryFree uint64
	NumDomains uint32
}

type VirtualCpu struct {
	State     uint32
	CpuTime   uint32
	NrVirtCpu uint32
}

type VirtualMemory struct {
	Memory    uint64
	MaxMemory uint64
}

type VirtualDiskIO struct {
	Capacity   uint64
	Allocation uint64
	Available  uint64
	RdReq      uint32
	RdBytes    uint64
	WrReq      uint32
	WrBytes    uint64
	Errs       uint32
}

type VirtualNetIO struct {
	RxBytes uint64
	RxPkts  uint32
	RxErrs  uint32
	RxDrop  uint32
	TxBytes uint64
	TxPkts  uint32
	TxErrs  uint32
	TxDrop  uint32
}

type AppOperations struct {
	Application    string
	Success        uint32
	Other          uint32
	Timeout        uint32
	InternalError  uint32
	BadRequest     uint32
	Forbidden      uint32
	TooLarge       uint32
	NotImplemented uint32
	NotFound       uint32
	Unavailable    uint32
	Unauthorized   uint32
}

type AppResources struct {
	UserTime   uint32
	SystemTime uint32
	MemUsed    uint64
	MemMax     uint64
	FdOpen     uint32
	FdMax      uint32
	ConnOpen   uint32
	ConnMax    uint32
}

type AppWorkers struct {
	WorkersActive uint32
	WorkersIdle   uint32
	WorkersMax    uint32
	ReqDelayed    uint32
	ReqDropped    uint32
}
