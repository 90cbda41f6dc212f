package sflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataFormatPacking(t *testing.T) {
	f := NewDataFormat(0, 1)
	assert.Equal(t, uint32(0), f.Enterprise())
	assert.Equal(t, uint32(1), f.Format())

	f = NewDataFormat(4413, 5)
	assert.Equal(t, uint32(4413), f.Enterprise())
	assert.Equal(t, uint32(5), f.Format())
	assert.Equal(t, "4413:5", f.String())
}

func TestDataSourcePacking(t *testing.T) {
	s := NewDataSource(0, 42)
	assert.Equal(t, uint32(0), s.SourceType())
	assert.Equal(t, uint32(42), s.Index())

	s = NewDataSource(1, 100)
	assert.Equal(t, uint32(1), s.SourceType())
	assert.Equal(t, uint32(100), s.Index())
}

func TestInterfacePacking(t *testing.T) {
	i := Interface(42)
	assert.True(t, i.IsSingle())
	assert.Equal(t, uint32(42), i.Value())

	i = Interface(0x40000001)
	assert.True(t, i.IsDiscarded())
	assert.Equal(t, uint32(1), i.Value())

	i = Interface(0x80000007)
	assert.True(t, i.IsMultiple())
	assert.Equal(t, uint32(7), i.Value())
}

func TestPackedRoundTrip(t *testing.T) {
	// unpacking then re-packing must reproduce the wire word exactly
	words := []uint32{0, 1, 0xfff, 0x1000, 0x113d005, 0x3fffffff, 0x40000001, 0x80000007, 0xffffffff}
	for _, w := range words {
		f := DataFormat(w)
		assert.Equal(t, w, uint32(NewDataFormat(f.Enterprise(), f.Format())), "DataFormat %#x", w)

		s := DataSource(w)
		assert.Equal(t, w, uint32(NewDataSource(s.SourceType(), s.Index())), "DataSource %#x", w)

		i := Interface(w)
		assert.Equal(t, w, uint32(NewInterface(i.Format(), i.Value())), "Interface %#x", w)
	}
}
