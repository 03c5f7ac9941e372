package endian

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/nintendotools/byml/errs"
)

// ReadUint24 reads a 24-bit unsigned integer at offset off, zero-extended
// into a uint32. The three bytes are ordered according to engine: most-
// significant-first for a big-endian engine, least-significant-first for a
// little-endian one.
func ReadUint24(engine EndianEngine, data []byte, off int) (uint32, error) {
	if off < 0 || off+3 > len(data) {
		return 0, errs.ErrTruncated
	}

	b := data[off : off+3]
	if engine == binary.BigEndian {
		return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
	}

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
}

// PutUint24 writes the low 24 bits of v at offset off in dst, using the
// same byte ordering rule as ReadUint24.
func PutUint24(engine EndianEngine, dst []byte, off int, v uint32) {
	b := dst[off : off+3]
	if engine == binary.BigEndian {
		b[0] = byte(v >> 16)
		b[1] = byte(v >> 8)
		b[2] = byte(v)
		return
	}

	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

// ReadFloat32 reads an IEEE-754 binary32 value at offset off.
func ReadFloat32(engine EndianEngine, data []byte, off int) (float32, error) {
	if off < 0 || off+4 > len(data) {
		return 0, errs.ErrTruncated
	}

	return math.Float32frombits(engine.Uint32(data[off : off+4])), nil
}

// PutFloat32 writes v as an IEEE-754 binary32 value at offset off.
func PutFloat32(engine EndianEngine, dst []byte, off int, v float32) {
	engine.PutUint32(dst[off:off+4], math.Float32bits(v))
}

// ReadFloat64 reads an IEEE-754 binary64 value at offset off.
func ReadFloat64(engine EndianEngine, data []byte, off int) (float64, error) {
	if off < 0 || off+8 > len(data) {
		return 0, errs.ErrTruncated
	}

	return math.Float64frombits(engine.Uint64(data[off : off+8])), nil
}

// PutFloat64 writes v as an IEEE-754 binary64 value at offset off.
func PutFloat64(engine EndianEngine, dst []byte, off int, v float64) {
	engine.PutUint64(dst[off:off+8], math.Float64bits(v))
}

// ReadCString reads a NUL-terminated, validated UTF-8 string starting at
// offset off. The returned string excludes the terminator.
func ReadCString(data []byte, off int) (string, error) {
	if off < 0 || off > len(data) {
		return "", errs.ErrTruncated
	}

	end := off
	for end < len(data) && data[end] != 0 {
		end++
	}
	if end >= len(data) {
		return "", errs.ErrTruncated
	}

	s := data[off:end]
	if !utf8.Valid(s) {
		return "", errs.ErrBadUTF8
	}

	return string(s), nil
}

// AlignUp rounds off up to the next multiple of align (align must be a
// power of two).
func AlignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}
