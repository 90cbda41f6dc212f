package sflow

import "fmt"

// DecoderError wraps any error raised while decoding a datagram.
type DecoderError struct {
	Err error
}

func (e *DecoderError) Error() string {
	return fmt.Sprintf("sFlow %s", e.Err.Error())
}

func (e *DecoderError) Unwrap() error {
	return e.Err
}

// SampleError annotates an error with the data format of the enclosing sample.
type SampleError struct {
	DataFormat DataFormat
	Err        error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("[sample %s] %s", e.DataFormat, e.Err.Error())
}

func (e *SampleError) Unwrap() error {
	return e.Err
}

// RecordError annotates an error with the data format of the record being decoded.
type RecordError struct {
	DataFormat DataFormat
	Err        error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("[record %s] %s", e.DataFormat, e.Err.Error())
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// TruncatedError is returned when a read would run past the remaining bytes.
type TruncatedError struct {
	Need int
	Have int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated: need %d bytes, have %d", e.Need, e.Have)
}

// UnsupportedVersionError is returned when the datagram version is not 5.
type UnsupportedVersionError struct {
	Version uint32
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported version %d", e.Version)
}

// InvalidValueError is returned when a discriminator or enum value is outside
// its defined set.
type InvalidValueError struct {
	Context string
	Value   uint32
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value %d", e.Context, e.Value)
}

// TooManyError is returned when a counted array exceeds its configured cap,
// before any element is decoded.
type TooManyError struct {
	Limit uint32
	Saw   uint32
}

func (e *TooManyError) Error() string {
	return fmt.Sprintf("too many elements: %d exceeds limit %d", e.Saw, e.Limit)
}

// TooLargeError is returned when a length-prefixed region exceeds its cap,
// before any allocation.
type TooLargeError struct {
	Limit uint32
	Saw   uint32
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("length %d exceeds limit %d", e.Saw, e.Limit)
}

// TrailingBytesError is returned when a framed region was not fully consumed
// by its decoder.
type TrailingBytesError struct {
	Count int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("%d trailing bytes", e.Count)
}
