// Package utils holds the byte-level helpers shared by decoders: display
// types for hardware and IP addresses and big-endian write primitives.
package utils

import (
	"fmt"
	"net"
	"net/netip"
)

type MacAddress []byte // purely for the formatting purpose

func (s MacAddress) String() string {
	return net.HardwareAddr([]byte(s)).String()
}

func (s MacAddress) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%s\"", net.HardwareAddr([]byte(s)).String())), nil
}

type IPAddress []byte // purely for the formatting purpose

func (s IPAddress) String() string {
	ip, ok := netip.AddrFromSlice([]byte(s))
	if !ok {
		return ""
	}
	return ip.String()
}

func (s IPAddress) MarshalJSON() ([]byte, error) {
	ip, _ := netip.AddrFromSlice([]byte(s))
	return []byte(fmt.Sprintf("\"%s\"", ip.String())), nil
}
