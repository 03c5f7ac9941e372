package compress

import (
	"encoding/binary"
	"fmt"

	"github.com/nintendotools/byml/errs"
)

// yaz0Magic is the 4-byte signature at the start of every Yaz0 stream.
var yaz0Magic = [4]byte{'Y', 'a', 'z', '0'}

// yaz0HeaderSize is the magic plus the big-endian decompressed-size field.
// Nintendo's real format reserves two further words here (an alignment hint
// and padding); we don't need them for round-tripping and always write zero.
const yaz0HeaderSize = 16

// minMatchLen is the shortest back-reference Yaz0 can encode.
const minMatchLen = 3

// maxMatchLen is the longest back-reference encodable at all: the extended
// three-byte form stores length-0x12 in its third byte, so 0x12 + 0xff.
const maxMatchLen = 0x12 + 0xff

// maxWindow is the largest distance a back-reference can span.
const maxWindow = 0x1000

// Yaz0Codec implements Nintendo's Yaz0 envelope, a byte-oriented LZ77
// variant used to compress individual BYML (and other) archive members.
// No third-party Go module implements this scheme (see DESIGN.md), so it
// is hand-rolled against the documented wire format: a 4-byte magic, a
// big-endian u32 decompressed size, then groups of one flag byte followed
// by up to 8 tokens, each either a literal byte or a back-reference.
type Yaz0Codec struct{}

var _ Codec = Yaz0Codec{}

// NewYaz0Codec creates a new Yaz0 codec.
func NewYaz0Codec() Yaz0Codec {
	return Yaz0Codec{}
}

// Compress encodes data into a Yaz0 stream using a straightforward greedy
// match finder over a sliding window of maxWindow bytes.
func (Yaz0Codec) Compress(data []byte) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	out := make([]byte, yaz0HeaderSize)
	copy(out[0:4], yaz0Magic[:])
	binary.BigEndian.PutUint32(out[4:8], uint32(len(data)))

	var group []byte
	var flagByte byte
	var flagBits int

	flushGroup := func() {
		if flagBits == 0 {
			return
		}
		out = append(out, flagByte)
		out = append(out, group...)
		group = group[:0]
		flagByte = 0
		flagBits = 0
	}

	emitLiteral := func(b byte) {
		flagByte |= 1 << (7 - flagBits)
		group = append(group, b)
		flagBits++
		if flagBits == 8 {
			flushGroup()
		}
	}

	emitMatch := func(dist, length int) {
		d := dist - 1
		if length <= 0x11 {
			group = append(group, byte(d>>8)|byte((length-2)<<4), byte(d))
		} else {
			group = append(group, byte(d>>8), byte(d), byte(length-0x12))
		}
		flagBits++
		if flagBits == 8 {
			flushGroup()
		}
	}

	n := len(data)
	for i := 0; i < n; {
		bestLen, bestDist := findMatch(data, i)
		if bestLen >= minMatchLen {
			emitMatch(bestDist, bestLen)
			i += bestLen
		} else {
			emitLiteral(data[i])
			i++
		}
	}
	flushGroup()

	return out, nil
}

// findMatch searches the already-emitted window behind pos for the longest
// run matching data[pos:], capped at maxMatchLen and maxWindow.
func findMatch(data []byte, pos int) (length, dist int) {
	n := len(data)
	windowStart := pos - maxWindow
	if windowStart < 0 {
		windowStart = 0
	}

	for start := pos - 1; start >= windowStart; start-- {
		l := 0
		maxLen := n - pos
		if maxLen > maxMatchLen {
			maxLen = maxMatchLen
		}
		for l < maxLen && data[start+l] == data[pos+l] {
			l++
		}
		if l > length {
			length = l
			dist = pos - start
			if length == maxMatchLen {
				break
			}
		}
	}

	return length, dist
}

// Decompress reverses Compress, validating the magic and reconstructing
// the original buffer from the flag/token stream.
func (Yaz0Codec) Decompress(data []byte) ([]byte, error) {
	if data == nil {
		return nil, nil
	}

	if len(data) < 8 || string(data[0:4]) != string(yaz0Magic[:]) {
		return nil, errs.ErrBadYaz0Magic
	}

	size := binary.BigEndian.Uint32(data[4:8])
	out := make([]byte, 0, size)

	pos := yaz0HeaderSize
	for uint32(len(out)) < size {
		if pos >= len(data) {
			return nil, errs.ErrYaz0Truncated
		}
		flags := data[pos]
		pos++

		for bit := 0; bit < 8 && uint32(len(out)) < size; bit++ {
			if flags&(1<<(7-bit)) != 0 {
				if pos >= len(data) {
					return nil, errs.ErrYaz0Truncated
				}
				out = append(out, data[pos])
				pos++
				continue
			}

			if pos+1 >= len(data) {
				return nil, errs.ErrYaz0Truncated
			}
			b0, b1 := data[pos], data[pos+1]
			pos += 2

			length := int(b0>>4) + 2
			dist := (int(b0&0x0f)<<8 | int(b1)) + 1

			if length == 2 {
				if pos >= len(data) {
					return nil, errs.ErrYaz0Truncated
				}
				length = int(data[pos]) + 0x12
				pos++
			}

			if dist > len(out) {
				return nil, fmt.Errorf("%w: back-reference distance %d exceeds output length %d", errs.ErrYaz0Truncated, dist, len(out))
			}

			start := len(out) - dist
			for i := 0; i < length; i++ {
				out = append(out, out[start+i])
			}
		}
	}

	return out, nil
}
