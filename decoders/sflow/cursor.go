package sflow

import (
	"encoding/binary"

	"github.com/nxthdr/sflow-parser/decoders/utils"
)

// Cursor is a bounded reader over an immutable byte slice. Every successful
// operation advances the position by exactly the documented amount. Take,
// Skip, Subcursor, Opaque and the fixed-width integer and MAC reads leave the
// position unchanged when they fail; Bool, Address, the counted string, opaque
// and array reads, and Decode leave whatever they read before the failing
// check consumed.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{buf: data}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Done reports whether every byte has been consumed.
func (c *Cursor) Done() bool {
	return c.Remaining() == 0
}

// Take returns the next n bytes. The returned slice aliases the input buffer;
// callers that retain data must copy (see Opaque).
func (c *Cursor) Take(n int) ([]byte, error) {
	if n > c.Remaining() {
		return nil, &TruncatedError{Need: n, Have: c.Remaining()}
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances past n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if n > c.Remaining() {
		return &TruncatedError{Need: n, Have: c.Remaining()}
	}
	c.pos += n
	return nil
}

// Subcursor carves an independent cursor over the next n bytes and advances
// the parent past them. The framed sub-decoder is built on this.
func (c *Cursor) Subcursor(n int) (*Cursor, error) {
	b, err := c.Take(n)
	if err != nil {
		return nil, err
	}
	return &Cursor{buf: b}, nil
}

// U32 reads a big-endian unsigned 32-bit integer.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// U64 reads a big-endian unsigned 64-bit integer.
func (c *Cursor) U64() (uint64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// I32 reads a big-endian signed 32-bit integer.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// I64 reads a big-endian signed 64-bit integer.
func (c *Cursor) I64() (int64, error) {
	v, err := c.U64()
	return int64(v), err
}

// Bool reads an XDR boolean. Values other than 0 and 1 are rejected.
func (c *Cursor) Bool() (bool, error) {
	v, err := c.U32()
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, &InvalidValueError{Context: "bool", Value: v}
	}
	return v == 1, nil
}

func xdrPad(n int) int {
	return (4 - n%4) % 4
}

// Opaque reads n bytes plus XDR padding to the next 4-byte boundary. The
// returned slice is an owned copy.
func (c *Cursor) Opaque(n int) ([]byte, error) {
	need := n + xdrPad(n)
	if need > c.Remaining() {
		return nil, &TruncatedError{Need: need, Have: c.Remaining()}
	}
	b, _ := c.Take(n)
	data := make([]byte, n)
	copy(data, b)
	c.pos += xdrPad(n)
	return data, nil
}

// Rest consumes every remaining byte and returns an owned copy. Used for the
// unknown-record and unknown-sample fallbacks, where the framed length is the
// only structure available.
func (c *Cursor) Rest() []byte {
	b, _ := c.Take(c.Remaining())
	data := make([]byte, len(b))
	copy(data, b)
	return data
}

// CountedOpaque reads a 32-bit length followed by that many bytes plus XDR
// padding. The length is capped before any allocation.
func (c *Cursor) CountedOpaque() ([]byte, error) {
	length, err := c.U32()
	if err != nil {
		return nil, err
	}
	if length > MaxOpaqueBytes {
		return nil, &TooLargeError{Limit: MaxOpaqueBytes, Saw: length}
	}
	return c.Opaque(int(length))
}

// CountedString reads an XDR string: a 32-bit length, the bytes, and padding.
// The bytes are stored verbatim, with no UTF-8 validation.
func (c *Cursor) CountedString() (string, error) {
	length, err := c.U32()
	if err != nil {
		return "", err
	}
	if length > MaxStringBytes {
		return "", &TooLargeError{Limit: MaxStringBytes, Saw: length}
	}
	b, err := c.Opaque(int(length))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ArrayLen reads a 32-bit element count and rejects counts above limit before
// any element is decoded.
func (c *Cursor) ArrayLen(limit uint32) (uint32, error) {
	n, err := c.U32()
	if err != nil {
		return 0, err
	}
	if n > limit {
		return 0, &TooManyError{Limit: limit, Saw: n}
	}
	return n, nil
}

// U32Array reads a counted array of 32-bit integers.
func (c *Cursor) U32Array(limit uint32) ([]uint32, error) {
	n, err := c.ArrayLen(limit)
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		if out[i], err = c.U32(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Address reads the sFlow address union: a 32-bit type discriminator followed
// by 4 bytes for IPv4 or 16 bytes for IPv6. Any other discriminator is an
// unknown address with no payload.
func (c *Cursor) Address() (Address, error) {
	t, err := c.U32()
	if err != nil {
		return Address{}, err
	}
	var size int
	switch t {
	case AddressTypeIPv4:
		size = 4
	case AddressTypeIPv6:
		size = 16
	default:
		return Address{Type: AddressTypeUnknown}, nil
	}
	b, err := c.Take(size)
	if err != nil {
		return Address{}, err
	}
	ip := make(utils.IPAddress, size)
	copy(ip, b)
	return Address{Type: t, IP: ip}, nil
}

// Mac reads a raw 6-byte MAC address.
func (c *Cursor) Mac() (utils.MacAddress, error) {
	b, err := c.Take(6)
	if err != nil {
		return nil, err
	}
	mac := make(utils.MacAddress, 6)
	copy(mac, b)
	return mac, nil
}

// MacPadded reads a 6-byte MAC address followed by 2 bytes of padding, the
// form used by the 802.11 records.
func (c *Cursor) MacPadded() (utils.MacAddress, error) {
	if c.Remaining() < 8 {
		return nil, &TruncatedError{Need: 8, Have: c.Remaining()}
	}
	mac, err := c.Mac()
	if err != nil {
		return nil, err
	}
	if err := c.Skip(2); err != nil {
		return nil, err
	}
	return mac, nil
}

// Decode reads successive fields into the given destinations, in order.
// Supported destinations are pointers to the integer widths used by the XDR
// field lists, the packed identifier types, and byte slices, which are filled
// exactly (no padding).
func (c *Cursor) Decode(dests ...interface{}) error {
	for _, d := range dests {
		var err error
		switch v := d.(type) {
		case *uint32:
			*v, err = c.U32()
		case *uint64:
			*v, err = c.U64()
		case *int32:
			*v, err = c.I32()
		case *int64:
			*v, err = c.I64()
		case *DataFormat:
			var w uint32
			w, err = c.U32()
			*v = DataFormat(w)
		case *DataSource:
			var w uint32
			w, err = c.U32()
			*v = DataSource(w)
		case *Interface:
			var w uint32
			w, err = c.U32()
			*v = Interface(w)
		case []byte:
			var b []byte
			b, err = c.Take(len(v))
			if err == nil {
				copy(v, b)
			}
		default:
			return &InvalidValueError{Context: "decode destination"}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
