package section

import (
	"testing"

	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/format"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{ByteOrder: format.LittleEndian, Version: 2, HashKeyOff: 0x20, StringOff: 0x40, RootOff: 0x60}

	got, err := ParseHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderRoundTripBigEndian(t *testing.T) {
	h := Header{ByteOrder: format.BigEndian, Version: 3, HashKeyOff: 0, StringOff: 0x10, RootOff: 0x10}

	got, err := ParseHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderBadMagic(t *testing.T) {
	data := []byte{'X', 'X', 0x02, 0x00, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	_, err := ParseHeader(data)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestHeaderTruncated(t *testing.T) {
	_, err := ParseHeader([]byte("YB"))
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestHeaderBadVersion(t *testing.T) {
	h := Header{ByteOrder: format.LittleEndian, Version: 2}
	b := h.Bytes()
	b[2], b[3] = 0x09, 0x00

	_, err := ParseHeader(b)
	require.ErrorIs(t, err, errs.ErrBadVersion)
}

func TestHeaderVersion1BigEndianRejected(t *testing.T) {
	h := Header{ByteOrder: format.BigEndian, Version: 1}

	_, err := ParseHeader(h.Bytes())
	require.ErrorIs(t, err, errs.ErrEndianVersionMismatch)
}
