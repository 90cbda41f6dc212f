package sflow

// flowDecoders routes a flow record (enterprise, format) key to its decoder.
// Lookup misses fall through to the RawRecord path in decodeFlowRecord.
//
// Populated in init() rather than via a var initializer: decodeExtended80211Aggregation
// recurses into decodeFlowRecord, which looks up this map, and that would otherwise form
// an initialization cycle.
var flowDecoders map[DataFormat]func(*Cursor) (interface{}, error)

func init() {
	flowDecoders = map[DataFormat]func(*Cursor) (interface{}, error){
		NewDataFormat(0, FlowFormatSampledHeader):       decodeSampledHeader,
		NewDataFormat(0, FlowFormatSampledEthernet):     decodeSampledEthernet,
		NewDataFormat(0, FlowFormatSampledIPv4):         decodeSampledIPv4,
		NewDataFormat(0, FlowFormatSampledIPv6):         decodeSampledIPv6,
		NewDataFormat(0, FlowFormatExtSwitch):           decodeExtendedSwitch,
		NewDataFormat(0, FlowFormatExtRouter):           decodeExtendedRouter,
		NewDataFormat(0, FlowFormatExtGateway):          decodeExtendedGateway,
		NewDataFormat(0, FlowFormatExtUser):             decodeExtendedUser,
		NewDataFormat(0, FlowFormatExtURL):              decodeExtendedUrl,
		NewDataFormat(0, FlowFormatExtMpls):             decodeExtendedMpls,
		NewDataFormat(0, FlowFormatExtNat):              decodeExtendedNat,
		NewDataFormat(0, FlowFormatExtMplsTunnel):       decodeExtendedMplsTunnel,
		NewDataFormat(0, FlowFormatExtMplsVc):           decodeExtendedMplsVc,
		NewDataFormat(0, FlowFormatExtMplsFec):          decodeExtendedMplsFec,
		NewDataFormat(0, FlowFormatExtMplsLvpFec):       decodeExtendedMplsLvpFec,
		NewDataFormat(0, FlowFormatExtVlanTunnel):       decodeExtendedVlanTunnel,
		NewDataFormat(0, FlowFormatExt80211Payload):     decodeExtended80211Payload,
		NewDataFormat(0, FlowFormatExt80211Rx):          decodeExtended80211Rx,
		NewDataFormat(0, FlowFormatExt80211Tx):          decodeExtended80211Tx,
		NewDataFormat(0, FlowFormatExt80211Aggregation): decodeExtended80211Aggregation,
		NewDataFormat(0, FlowFormatExtSocketIPv4):       decodeExtendedSocketIPv4,
		NewDataFormat(0, FlowFormatExtSocketIPv6):       decodeExtendedSocketIPv6,
		NewDataFormat(0, FlowFormatAppOperation):        decodeAppOperation,
		NewDataFormat(0, FlowFormatAppParentContext):    decodeAppParentContext,
	}
}

func decodeSampledHeader(c *Cursor) (interface{}, error) {
	var sh SampledHeader
	if err := c.Decode(&sh.Protocol, &sh.FrameLength, &sh.Stripped); err != nil {
		return nil, err
	}
	var err error
	if sh.HeaderData, err = c.CountedOpaque(); err != nil {
		return nil, err
	}
	return sh, nil
}

func decodeSampledEthernet(c *Cursor) (interface{}, error) {
	var se SampledEthernet
	var err error
	if se.Length, err = c.U32(); err != nil {
		return nil, err
	}
	if se.SrcMac, err = c.Mac(); err != nil {
		return nil, err
	}
	if se.DstMac, err = c.Mac(); err != nil {
		return nil, err
	}
	if se.EthType, err = c.U32(); err != nil {
		return nil, err
	}
	return se, nil
}

func decodeSampledIPv4(c *Cursor) (interface{}, error) {
	var s SampledIPv4
	s.SrcIP = make([]byte, 4)
	s.DstIP = make([]byte, 4)
	if err := c.Decode(&s.Length, &s.Protocol, []byte(s.SrcIP), []byte(s.DstIP),
		&s.SrcPort, &s.DstPort, &s.TcpFlags, &s.Tos); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeSampledIPv6(c *Cursor) (interface{}, error) {
	var s SampledIPv6
	s.SrcIP = make([]byte, 16)
	s.DstIP = make([]byte, 16)
	if err := c.Decode(&s.Length, &s.Protocol, []byte(s.SrcIP), []byte(s.DstIP),
		&s.SrcPort, &s.DstPort, &s.TcpFlags, &s.Priority); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeExtendedSwitch(c *Cursor) (interface{}, error) {
	var es ExtendedSwitch
	if err := c.Decode(&es.SrcVlan, &es.SrcPriority, &es.DstVlan, &es.DstPriority); err != nil {
		return nil, err
	}
	return es, nil
}

func decodeExtendedRouter(c *Cursor) (interface{}, error) {
	var er ExtendedRouter
	var err error
	if er.NextHop, err = c.Address(); err != nil {
		return nil, err
	}
	if err := c.Decode(&er.SrcMaskLen, &er.DstMaskLen); err != nil {
		return nil, err
	}
	return er, nil
}

func decodeExtendedGateway(c *Cursor) (interface{}, error) {
	var eg ExtendedGateway
	var err error
	if eg.NextHop, err = c.Address(); err != nil {
		return nil, err
	}
	if err := c.Decode(&eg.AS, &eg.SrcAS, &eg.SrcPeerAS); err != nil {
		return nil, err
	}
	segments, err := c.ArrayLen(MaxArrayElems)
	if err != nil {
		return nil, err
	}
	eg.ASPath = make([]AsPathSegment, segments)
	for i := range eg.ASPath {
		if eg.ASPath[i].PathType, err = c.U32(); err != nil {
			return nil, err
		}
		if eg.ASPath[i].Path, err = c.U32Array(MaxArrayElems); err != nil {
			return nil, err
		}
	}
	if eg.Communities, err = c.U32Array(MaxArrayElems); err != nil {
		return nil, err
	}
	if eg.LocalPref, err = c.U32(); err != nil {
		return nil, err
	}
	return eg, nil
}

func decodeExtendedUser(c *Cursor) (interface{}, error) {
	var eu ExtendedUser
	var err error
	if eu.SrcCharset, err = c.U32(); err != nil {
		return nil, err
	}
	if eu.SrcUser, err = c.CountedString(); err != nil {
		return nil, err
	}
	if eu.DstCharset, err = c.U32(); err != nil {
		return nil, err
	}
	if eu.DstUser, err = c.CountedString(); err != nil {
		return nil, err
	}
	return eu, nil
}

func decodeExtendedUrl(c *Cursor) (interface{}, error) {
	var eu ExtendedUrl
	var err error
	if eu.Direction, err = c.U32(); err != nil {
		return nil, err
	}
	if eu.Url, err = c.CountedString(); err != nil {
		return nil, err
	}
	if eu.Host, err = c.CountedString(); err != nil {
		return nil, err
	}
	return eu, nil
}

func decodeExtendedMpls(c *Cursor) (interface{}, error) {
	var em ExtendedMpls
	var err error
	if em.NextHop, err = c.Address(); err != nil {
		return nil, err
	}
	if em.InStack, err = c.U32Array(MaxArrayElems); err != nil {
		return nil, err
	}
	if em.OutStack, err = c.U32Array(MaxArrayElems); err != nil {
		return nil, err
	}
	return em, nil
}

func decodeExtendedNat(c *Cursor) (interface{}, error) {
	var en ExtendedNat
	var err error
	if en.SrcAddress, err = c.Address(); err != nil {
		return nil, err
	}
	if en.DstAddress, err = c.Address(); err != nil {
		return nil, err
	}
	return en, nil
}

func decodeExtendedMplsTunnel(c *Cursor) (interface{}, error) {
	var et ExtendedMplsTunnel
	var err error
	if et.TunnelLspName, err = c.CountedString(); err != nil {
		return nil, err
	}
	if err := c.Decode(&et.TunnelID, &et.TunnelCos); err != nil {
		return nil, err
	}
	return et, nil
}

func decodeExtendedMplsVc(c *Cursor) (interface{}, error) {
	var ev ExtendedMplsVc
	var err error
	if ev.VcInstanceName, err = c.CountedString(); err != nil {
		return nil, err
	}
	if err := c.Decode(&ev.VllVcID, &ev.VcLabel, &ev.VcCos); err != nil {
		return nil, err
	}
	return ev, nil
}

func decodeExtendedMplsFec(c *Cursor) (interface{}, error) {
	var ef ExtendedMplsFec
	var err error
	if ef.FecAddrPrefix, err = c.Address(); err != nil {
		return nil, err
	}
	if ef.FecPrefixLen, err = c.U32(); err != nil {
		return nil, err
	}
	return ef, nil
}

func decodeExtendedMplsLvpFec(c *Cursor) (interface{}, error) {
	var ef ExtendedMplsLvpFec
	var err error
	if ef.FecAddrPrefixLen, err = c.U32(); err != nil {
		return nil, err
	}
	return ef, nil
}

func decodeExtendedVlanTunnel(c *Cursor) (interface{}, error) {
	var ev ExtendedVlanTunnel
	var err error
	if ev.Stack, err = c.U32Array(MaxArrayElems); err != nil {
		return nil, err
	}
	return ev, nil
}

func decodeExtended80211Payload(c *Cursor) (interface{}, error) {
	var ep Extended80211Payload
	var err error
	if ep.CipherSuite, err = c.U32(); err != nil {
		return nil, err
	}
	if ep.Data, err = c.CountedOpaque(); err != nil {
		return nil, err
	}
	return ep, nil
}

func decodeExtended80211Rx(c *Cursor) (interface{}, error) {
	var er Extended80211Rx
	var err error
	if er.Ssid, err = c.CountedString(); err != nil {
		return nil, err
	}
	if er.Bssid, err = c.MacPadded(); err != nil {
		return nil, err
	}
	if err := c.Decode(&er.Version, &er.Channel, &er.Speed, &er.Rsni, &er.Rcpi, &er.PacketDuration); err != nil {
		return nil, err
	}
	return er, nil
}

func decodeExtended80211Tx(c *Cursor) (interface{}, error) {
	var et Extended80211Tx
	var err error
	if et.Ssid, err = c.CountedString(); err != nil {
		return nil, err
	}
	if et.Bssid, err = c.MacPadded(); err != nil {
		return nil, err
	}
	if err := c.Decode(&et.Version, &et.Transmissions, &et.PacketDuration,
		&et.RetransDuration, &et.Channel, &et.Speed, &et.Power); err != nil {
		return nil, err
	}
	return et, nil
}

func decodeExtended80211Aggregation(c *Cursor) (interface{}, error) {
	var ea Extended80211Aggregation
	pdus, err := c.ArrayLen(MaxArrayElems)
	if err != nil {
		return nil, err
	}
	ea.Pdus = make([]Pdu, pdus)
	for i := range ea.Pdus {
		count, err := c.ArrayLen(MaxRecordsPerSample)
		if err != nil {
			return nil, err
		}
		ea.Pdus[i].Records = make([]FlowRecord, count)
		for j := range ea.Pdus[i].Records {
			if ea.Pdus[i].Records[j], err = decodeFlowRecord(c); err != nil {
				return nil, err
			}
		}
	}
	return ea, nil
}

func decodeExtendedSocketIPv4(c *Cursor) (interface{}, error) {
	var es ExtendedSocketIPv4
	es.LocalIP = make([]byte, 4)
	es.RemoteIP = make([]byte, 4)
	if err := c.Decode(&es.Protocol, []byte(es.LocalIP), []byte(es.RemoteIP),
		&es.LocalPort, &es.RemotePort); err != nil {
		return nil, err
	}
	return es, nil
}

func decodeExtendedSocketIPv6(c *Cursor) (interface{}, error) {
	var es ExtendedSocketIPv6
	es.LocalIP = make([]byte, 16)
	es.RemoteIP = make([]byte, 16)
	if err := c.Decode(&es.Protocol, []byte(es.LocalIP), []byte(es.RemoteIP),
		&es.LocalPort, &es.RemotePort); err != nil {
		return nil, err
	}
	return es, nil
}

func decodeAppContext(c *Cursor) (AppContext, error) {
	var ac AppContext
	var err error
	if ac.Application, err = c.CountedString(); err != nil {
		return ac, err
	}
	if ac.Operation, err = c.CountedString(); err != nil {
		return ac, err
	}
	if ac.Attributes, err = c.CountedString(); err != nil {
		return ac, err
	}
	return ac, nil
}

func decodeAppOperation(c *Cursor) (interface{}, error) {
	var ao AppOperation
	var err error
	if ao.Context, err = decodeAppContext(c); err != nil {
		return nil, err
	}
	if ao.StatusDescr, err = c.CountedString(); err != nil {
		return nil, err
	}
	if err := c.Decode(&ao.ReqBytes, &ao.RespBytes, &ao.DurationUs, &ao.Status); err != nil {
		return nil, err
	}
	return ao, nil
}

func decodeAppParentContext(c *Cursor) (interface{}, error) {
	var ap AppParentContext
	var err error
	if ap.Context, err = decodeAppContext(c); err != nil {
		return nil, err
	}
	return ap, nil
}
