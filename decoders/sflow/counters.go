package sflow

import "github.com/nxthdr/sflow-parser/decoders/utils"

// counterDecoders routes a counter record (enterprise, format) key to its
// decoder. The flow and counter namespaces are disjoint.
var counterDecoders = map[DataFormat]func(*Cursor) (interface{}, error){
	NewDataFormat(0, CounterFormatGenericInterface): decodeIfCounters,
	NewDataFormat(0, CounterFormatEthernet):         decodeEthernetCounters,
	NewDataFormat(0, CounterFormatTokenRing):        decodeTokenRingCounters,
	NewDataFormat(0, CounterFormatVg100):            decodeVg100Counters,
	NewDataFormat(0, CounterFormatVlan):             decodeVlanCounters,
	NewDataFormat(0, CounterFormatIeee80211):        decodeIeee80211Counters,
	NewDataFormat(0, CounterFormatProcessor):        decodeProcessorCounters,
	NewDataFormat(0, CounterFormatRadioUtilization): decodeRadioUtilization,
	NewDataFormat(0, CounterFormatOpenFlowPort):     decodeOpenFlowPort,
	NewDataFormat(0, CounterFormatOpenFlowPortName): decodeOpenFlowPortName,
	NewDataFormat(0, CounterFormatHostDescription):  decodeHostDescription,
	NewDataFormat(0, CounterFormatHostAdapters):     decodeHostAdapters,
	NewDataFormat(0, CounterFormatHostParent):       decodeHostParent,
	NewDataFormat(0, CounterFormatHostCpu):          decodeHostCpu,
	NewDataFormat(0, CounterFormatHostMemory):       decodeHostMemory,
	NewDataFormat(0, CounterFormatHostDiskIO):       decodeHostDiskIO,
	NewDataFormat(0, CounterFormatHostNetIO):        decodeHostNetIO,
	NewDataFormat(0, CounterFormatVirtualNode):      decodeVirtualNode,
	NewDataFormat(0, CounterFormatVirtualCpu):       decodeVirtualCpu,
	NewDataFormat(0, CounterFormatVirtualMemory):    decodeVirtualMemory,
	NewDataFormat(0, CounterFormatVirtualDiskIO):    decodeVirtualDiskIO,
	NewDataFormat(0, CounterFormatVirtualNetIO):     decodeVirtualNetIO,
	NewDataFormat(0, CounterFormatAppOperations):    decodeAppOperations,
	NewDataFormat(0, CounterFormatAppResources):     decodeAppResources,
	NewDataFormat(0, CounterFormatAppWorkers):       decodeAppWorkers,
}

func decodeIfCounters(c *Cursor) (interface{}, error) {
	var ic IfCounters
	if err := c.Decode(&ic.IfIndex, &ic.IfType, &ic.IfSpeed, &ic.IfDirection, &ic.IfStatus,
		&ic.IfInOctets, &ic.IfInUcastPkts, &ic.IfInMulticastPkts, &ic.IfInBroadcastPkts,
		&ic.IfInDiscards, &ic.IfInErrors, &ic.IfInUnknownProtos,
		&ic.IfOutOctets, &ic.IfOutUcastPkts, &ic.IfOutMulticastPkts, &ic.IfOutBroadcastPkts,
		&ic.IfOutDiscards, &ic.IfOutErrors, &ic.IfPromiscuousMode); err != nil {
		return nil, err
	}
	return ic, nil
}

func decodeEthernetCounters(c *Cursor) (interface{}, error) {
	var ec EthernetCounters
	if err := c.Decode(&ec.Dot3StatsAlignmentErrors, &ec.Dot3StatsFCSErrors,
		&ec.Dot3StatsSingleCollisionFrames, &ec.Dot3StatsMultipleCollisionFrames,
		&ec.Dot3StatsSQETestErrors, &ec.Dot3StatsDeferredTransmissions,
		&ec.Dot3StatsLateCollisions, &ec.Dot3StatsExcessiveCollisions,
		&ec.Dot3StatsInternalMacTransmitErrors, &ec.Dot3StatsCarrierSenseErrors,
		&ec.Dot3StatsFrameTooLongs, &ec.Dot3StatsInternalMacReceiveErrors,
		&ec.Dot3StatsSymbolErrors); err != nil {
		return nil, err
	}
	return ec, nil
}

func decodeTokenRingCounters(c *Cursor) (interface{}, error) {
	var tr TokenRingCounters
	if err := c.Decode(&tr.Dot5StatsLineErrors, &tr.Dot5StatsBurstErrors, &tr.Dot5StatsACErrors,
		&tr.Dot5StatsAbortTransErrors, &tr.Dot5StatsInternalErrors, &tr.Dot5StatsLostFrameErrors,
		&tr.Dot5StatsReceiveCongestions, &tr.Dot5StatsFrameCopiedErrors, &tr.Dot5StatsTokenErrors,
		&tr.Dot5StatsSoftErrors, &tr.Dot5StatsHardErrors, &tr.Dot5StatsSignalLoss,
		&tr.Dot5StatsTransmitBeacons, &tr.Dot5StatsRecoverys, &tr.Dot5StatsLobeWires,
		&tr.Dot5StatsRemoves, &tr.Dot5StatsSingles, &tr.Dot5StatsFreqErrors); err != nil {
		return nil, err
	}
	return tr, nil
}

func decodeVg100Counters(c *Cursor) (interface{}, error) {
	var vg Vg100Counters
	if err := c.Decode(&vg.Dot12InHighPriorityFrames, &vg.Dot12InHighPriorityOctets,
		&vg.Dot12InNormPriorityFrames, &vg.Dot12InNormPriorityOctets,
		&vg.Dot12InIPMErrors, &vg.Dot12InOversizeFrameErrors, &vg.Dot12InDataErrors,
		&vg.Dot12InNullAddressedFrames, &vg.Dot12OutHighPriorityFrames,
		&vg.Dot12OutHighPriorityOctets, &vg.Dot12TransitionIntoTrainings,
		&vg.Dot12HCInHighPriorityOctets, &vg.Dot12HCInNormPriorityOctets,
		&vg.Dot12HCOutHighPriorityOctets); err != nil {
		return nil, err
	}
	return vg, nil
}

func decodeVlanCounters(c *Cursor) (interface{}, error) {
	var vc VlanCounters
	if err := c.Decode(&vc.VlanID, &vc.Octets, &vc.UcastPkts, &vc.MulticastPkts,
		&vc.BroadcastPkts, &vc.Discards); err != nil {
		return nil, err
	}
	return vc, nil
}

func decodeIeee80211Counters(c *Cursor) (interface{}, error) {
	var wc Ieee80211Counters
	if err := c.Decode(&wc.Dot11TransmittedFragmentCount, &wc.Dot11MulticastTransmittedFrameCount,
		&wc.Dot11FailedCount, &wc.Dot11RetryCount, &wc.Dot11MultipleRetryCount,
		&wc.Dot11FrameDuplicateCount, &wc.Dot11RTSSuccessCount, &wc.Dot11RTSFailureCount,
		&wc.Dot11ACKFailureCount, &wc.Dot11ReceivedFragmentCount,
		&wc.Dot11MulticastReceivedFrameCount, &wc.Dot11FCSErrorCount,
		&wc.Dot11TransmittedFrameCount, &wc.Dot11WEPUndecryptableCount,
		&wc.Dot11QoSDiscardedFragmentCount, &wc.Dot11AssociatedStationCount,
		&wc.Dot11QoSCFPollsReceivedCount, &wc.Dot11QoSCFPollsUnusedCount,
		&wc.Dot11QoSCFPollsUnusableCount, &wc.Dot11QoSCFPollsLostCount); err != nil {
		return nil, err
	}
	return wc, nil
}

func decodeProcessorCounters(c *Cursor) (interface{}, error) {
	var pc ProcessorCounters
	if err := c.Decode(&pc.Cpu5s, &pc.Cpu1m, &pc.Cpu5m, &pc.TotalMemory, &pc.FreeMemory); err != nil {
		return nil, err
	}
	return pc, nil
}

func decodeRadioUtilization(c *Cursor) (interface{}, error) {
	var ru RadioUtilization
	if err := c.Decode(&ru.ElapsedTime, &ru.OnChannelTime, &ru.OnChannelBusyTime); err != nil {
		return nil, err
	}
	return ru, nil
}

func decodeOpenFlowPort(c *Cursor) (interface{}, error) {
	var op OpenFlowPort
	if err := c.Decode(&op.DatapathID, &op.PortNo); err != nil {
		return nil, err
	}
	return op, nil
}

func decodeOpenFlowPortName(c *Cursor) (interface{}, error) {
	var on OpenFlowPortName
	var err error
	if on.PortName, err = c.CountedString(); err != nil {
		return nil, err
	}
	return on, nil
}

func decodeHostDescription(c *Cursor) (interface{}, error) {
	var hd HostDescription
	var err error
	if hd.Hostname, err = c.CountedString(); err != nil {
		return nil, err
	}
	hd.UUID = make([]byte, 16)
	if err := c.Decode([]byte(hd.UUID), &hd.MachineType, &hd.OsName); err != nil {
		return nil, err
	}
	if hd.OsRelease, err = c.CountedString(); err != nil {
		return nil, err
	}
	return hd, nil
}

func decodeHostAdapters(c *Cursor) (interface{}, error) {
	var ha HostAdapters
	count, err := c.ArrayLen(MaxArrayElems)
	if err != nil {
		return nil, err
	}
	ha.Adapters = make([]HostAdapter, count)
	for i := range ha.Adapters {
		if ha.Adapters[i].IfIndex, err = c.U32(); err != nil {
			return nil, err
		}
		macs, err := c.ArrayLen(MaxArrayElems)
		if err != nil {
			return nil, err
		}
		ha.Adapters[i].MacAddresses = make([]utils.MacAddress, macs)
		for j := range ha.Adapters[i].MacAddresses {
			if ha.Adapters[i].MacAddresses[j], err = c.Mac(); err != nil {
				return nil, err
			}
		}
	}
	return ha, nil
}

func decodeHostParent(c *Cursor) (interface{}, error) {
	var hp HostParent
	if err := c.Decode(&hp.ContainerType, &hp.ContainerIndex); err != nil {
		return nil, err
	}
	return hp, nil
}

func decodeHostCpu(c *Cursor) (interface{}, error) {
	var hc HostCpu
	if err := c.Decode(&hc.LoadOne, &hc.LoadFive, &hc.LoadFifteen, &hc.ProcRun, &hc.ProcTotal,
		&hc.CpuNum, &hc.CpuSpeed, &hc.Uptime, &hc.CpuUser, &hc.CpuNice, &hc.CpuSystem,
		&hc.CpuIdle, &hc.CpuWio, &hc.CpuIntr, &hc.CpuSintr, &hc.Interrupts, &hc.Contexts); err != nil {
		return nil, err
	}
	return hc, nil
}

func decodeHostMemory(c *Cursor) (interface{}, error) {
	var hm HostMemory
	if err := c.Decode(&hm.MemTotal, &hm.MemFree, &hm.MemShared, &hm.MemBuffers, &hm.MemCached,
		&hm.SwapTotal, &hm.SwapFree, &hm.PageIn, &hm.PageOut, &hm.SwapIn, &hm.SwapOut); err != nil {
		return nil, err
	}
	return hm, nil
}

func decodeHostDiskIO(c *Cursor) (interface{}, error) {
	var hd HostDiskIO
	if err := c.Decode(&hd.DiskTotal, &hd.DiskFree, &hd.PartMaxUsed, &hd.Reads, &hd.BytesRead,
		&hd.ReadTime, &hd.Writes, &hd.BytesWritten, &hd.WriteTime); err != nil {
		return nil, err
	}
	return hd, nil
}

func decodeHostNetIO(c *Cursor) (interface{}, error) {
	var hn HostNetIO
	if err := c.Decode(&hn.BytesIn, &hn.PktsIn, &hn.ErrsIn, &hn.DropsIn,
		&hn.BytesOut, &hn.PktsOut, &hn.ErrsOut, &hn.DropsOut); err != nil {
		return nil, err
	}
	return hn, nil
}

func decodeVirtualNode(c *Cursor) (interface{}, error) {
	var vn VirtualNode
	if err := c.Decode(&vn.Mhz, &vn.Cpus, &vn.Memory, &vn.MemoryFree, &vn.NumDomains); err != nil {
		return nil, err
	}
	return vn, nil
}

func decodeVirtualCpu(c *Cursor) (interface{}, error) {
	var vc VirtualCpu
	if err := c.Decode(&vc.State, &vc.CpuTime, &vc.NrVirtCpu); err != nil {
		return nil, err
	}
	return vc, nil
}

func decodeVirtualMemory(c *Cursor) (interface{}, error) {
	var vm VirtualMemory
	if err := c.Decode(&vm.Memory, &vm.MaxMemory); err != nil {
		return nil, err
	}
	return vm, nil
}

func decodeVirtualDiskIO(c *Cursor) (interface{}, error) {
	var vd VirtualDiskIO
	if err := c.Decode(&vd.Capacity, &vd.Allocation, &vd.Available, &vd.RdReq, &vd.RdBytes,
		&vd.WrReq, &vd.WrBytes, &vd.Errs); err != nil {
		return nil, err
	}
	return vd, nil
}

func decodeVirtualNetIO(c *Cursor) (interface{}, error) {
	var vn VirtualNetIO
	if err := c.Decode(&vn.RxBytes, &vn.RxPkts, &vn.RxErrs, &vn.RxDrop,
		&vn.TxBytes, &vn.TxPkts, &vn.TxErrs, &vn.TxDrop); err != nil {
		return nil, err
	}
	return vn, nil
}

func decodeAppOperations(c *Cursor) (interface{}, error) {
	var ao AppOperations
	var err error
	if ao.Application, err = c.CountedString(); err != nil {
		return nil, err
	}
	if err := c.Decode(&ao.Success, &ao.Other, &ao.Timeout, &ao.InternalError, &ao.BadRequest,
		&ao.Forbidden, &ao.TooLarge, &ao.NotImplemented, &ao.NotFound, &ao.Unavailable,
		&ao.Unauthorized); err != nil {
		return nil, err
	}
	return ao, nil
}

func decodeAppResources(c *Cursor) (interface{}, error) {
	var ar AppResources
	if err := c.Decode(&ar.UserTime, &ar.SystemTime, &ar.MemUsed, &ar.MemMax,
		&ar.FdOpen, &ar.FdMax, &ar.ConnOpen, &ar.ConnMax); err != nil {
		return nil, err
	}
	return ar, nil
}

func decodeAppWorkers(c *Cursor) (interface{}, error) {
	var aw AppWorkers
	if err := c.Decode(&aw.WorkersActive, &aw.WorkersIdle, &aw.WorkersMax,
		&aw.ReqDelayed, &aw.ReqDropped); err != nil {
		return nil, err
	}
	return aw, nil
}
