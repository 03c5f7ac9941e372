package section

import (
	"fmt"

	"github.com/nintendotools/byml/endian"
	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/format"
)

// Header is the fixed-size 16-byte section at the start of every BYML
// document.
type Header struct {
	ByteOrder  format.ByteOrder
	Version    uint16
	HashKeyOff uint32 // 0 if the hash-key table is absent
	StringOff  uint32 // 0 if the value string table is absent
	RootOff    uint32
}

// Engine returns the endian engine matching h.ByteOrder.
func (h Header) Engine() endian.EndianEngine {
	if h.ByteOrder == format.BigEndian {
		return endian.GetBigEndianEngine()
	}
	return endian.GetLittleEndianEngine()
}

// ParseHeader parses and validates the 16-byte header at the start of data.
//
// Returns errs.ErrTruncated if data is shorter than format.HeaderSize,
// errs.ErrBadMagic if the magic bytes are neither "BY" nor "YB",
// errs.ErrBadVersion if the version is outside [1,3], and
// errs.ErrEndianVersionMismatch if version 1 is paired with big-endian.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < format.HeaderSize {
		return Header{}, errs.ErrTruncated
	}

	var h Header
	switch string(data[0:2]) {
	case format.MagicBigEndian:
		h.ByteOrder = format.BigEndian
	case format.MagicLittleEndian:
		h.ByteOrder = format.LittleEndian
	default:
		return Header{}, fmt.Errorf("%w: %q", errs.ErrBadMagic, data[0:2])
	}

	engine := h.Engine()
	h.Version = engine.Uint16(data[2:4])
	if h.Version < format.MinVersion || h.Version > format.MaxVersion {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrBadVersion, h.Version)
	}
	if h.Version == 1 && h.ByteOrder == format.BigEndian {
		return Header{}, errs.ErrEndianVersionMismatch
	}

	h.HashKeyOff = engine.Uint32(data[4:8])
	h.StringOff = engine.Uint32(data[8:12])
	h.RootOff = engine.Uint32(data[12:16])

	return h, nil
}

// Bytes serializes h into a format.HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, format.HeaderSize)
	engine := h.Engine()

	if h.ByteOrder == format.BigEndian {
		copy(b[0:2], format.MagicBigEndian)
	} else {
		copy(b[0:2], format.MagicLittleEndian)
	}

	engine.PutUint16(b[2:4], h.Version)
	engine.PutUint32(b[4:8], h.HashKeyOff)
	engine.PutUint32(b[8:12], h.StringOff)
	engine.PutUint32(b[12:16], h.RootOff)

	return b
}
