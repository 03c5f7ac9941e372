package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint24RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		value  uint32
	}{
		{"little-endian zero", GetLittleEndianEngine(), 0},
		{"little-endian max", GetLittleEndianEngine(), 0xFFFFFF},
		{"little-endian mid", GetLittleEndianEngine(), 0x123456},
		{"big-endian zero", GetBigEndianEngine(), 0},
		{"big-endian max", GetBigEndianEngine(), 0xFFFFFF},
		{"big-endian mid", GetBigEndianEngine(), 0x123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 3)
			PutUint24(tt.engine, buf, 0, tt.value)

			got, err := ReadUint24(tt.engine, buf, 0)
			require.NoError(t, err)
			require.Equal(t, tt.value, got)
		})
	}
}

func TestUint24ByteOrder(t *testing.T) {
	buf := make([]byte, 3)
	PutUint24(GetBigEndianEngine(), buf, 0, 0x010203)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, buf)

	PutUint24(GetLittleEndianEngine(), buf, 0, 0x010203)
	require.Equal(t, []byte{0x03, 0x02, 0x01}, buf)
}

func TestReadUint24Truncated(t *testing.T) {
	_, err := ReadUint24(GetLittleEndianEngine(), []byte{0x01, 0x02}, 0)
	require.Error(t, err)
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := make([]byte, 4)
		PutFloat32(engine, buf, 0, 3.14)

		got, err := ReadFloat32(engine, buf, 0)
		require.NoError(t, err)
		require.Equal(t, float32(3.14), got)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := make([]byte, 8)
		PutFloat64(engine, buf, 0, 0.1)

		got, err := ReadFloat64(engine, buf, 0)
		require.NoError(t, err)
		require.Equal(t, 0.1, got)
	}
}

func TestReadCString(t *testing.T) {
	data := append([]byte("hello"), 0x00, 'x')

	s, err := ReadCString(data, 0)
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

func TestReadCStringTruncated(t *testing.T) {
	_, err := ReadCString([]byte("no terminator"), 0)
	require.Error(t, err)
}

func TestReadCStringBadUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0x00}

	_, err := ReadCString(data, 0)
	require.Error(t, err)
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		off, align, want int
	}{
		{0, 4, 0},
		{1, 4, 4},
		{3, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, AlignUp(tt.off, tt.align))
	}
}
