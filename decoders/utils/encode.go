package utils

import (
	"bytes"
	"encoding/binary"
)

// Big-endian write helpers. Decoding is the module's job; these exist for
// building wire-format fixtures and keyed output.

func WriteU8(buf *bytes.Buffer, v uint8) error {
	return buf.WriteByte(v)
}

func WriteU16(buf *bytes.Buffer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := buf.Write(b[:])
	return err
}

func WriteU32(buf *bytes.Buffer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := buf.Write(b[:])
	return err
}

func WriteU64(buf *bytes.Buffer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := buf.Write(b[:])
	return err
}

// WriteBytes writes raw bytes followed by zero padding to the next 4-byte
// boundary, the XDR opaque body form.
func WriteBytes(buf *bytes.Buffer, b []byte) error {
	if _, err := buf.Write(b); err != nil {
		return err
	}
	pad := (4 - len(b)%4) % 4
	_, err := buf.Write(make([]byte, pad))
	return err
}

// WriteString writes an XDR counted string: length prefix, bytes, padding.
func WriteString(buf *bytes.Buffer, s string) error {
	if err := WriteU32(buf, uint32(len(s))); err != nil {
		return err
	}
	return WriteBytes(buf, []byte(s))
}

// WriteOpaque writes an XDR counted opaque: length prefix, bytes, padding.
func WriteOpaque(buf *bytes.Buffer, b []byte) error {
	if err := WriteU32(buf, uint32(len(b))); err != nil {
		return err
	}
	return WriteBytes(buf, b)
}
