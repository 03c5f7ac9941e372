package section

import (
	"fmt"

	"github.com/nintendotools/byml/endian"
	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/format"
	"github.com/nintendotools/byml/internal/pool"
)

// StringTable is a parsed, indexable sequence of NUL-terminated UTF-8
// strings, as used for both the hash-key table and the value string table.
type StringTable struct {
	strings []string
}

// Len returns the number of strings in the table.
func (t StringTable) Len() int {
	return len(t.strings)
}

// At returns the string at idx, or an error if idx is out of range.
func (t StringTable) At(idx uint32) (string, error) {
	if int(idx) >= len(t.strings) {
		return "", fmt.Errorf("%w: string index %d (table has %d entries)", errs.ErrIndexOutOfRange, idx, len(t.strings))
	}

	return t.strings[idx], nil
}

// Strings returns the decoded strings in table order.
func (t StringTable) Strings() []string {
	return t.strings
}

// ParseStringTable parses a string table at the given absolute offset.
//
// The table begins with the tag byte format.TagStringTable, a 24-bit count
// N, and N+1 uint32 offsets relative to off. The first N offsets locate
// each string's first byte; the final offset is a bound one past the last
// string's terminator.
func ParseStringTable(engine endian.EndianEngine, data []byte, off int) (StringTable, error) {
	if off < 0 || off >= len(data) {
		return StringTable{}, errs.ErrTruncated
	}
	if format.Tag(data[off]) != format.TagStringTable {
		return StringTable{}, fmt.Errorf("%w: got 0x%02x at offset %d", errs.ErrBadStringTableTag, data[off], off)
	}

	count, err := endian.ReadUint24(engine, data, off+1)
	if err != nil {
		return StringTable{}, err
	}

	offsetsStart := off + 4
	n := int(count)

	strs := make([]string, n)
	for i := 0; i < n; i++ {
		entryOff := offsetsStart + i*4
		if entryOff+4 > len(data) {
			return StringTable{}, errs.ErrTruncated
		}

		strOff := off + int(engine.Uint32(data[entryOff:entryOff+4]))
		s, err := endian.ReadCString(data, strOff)
		if err != nil {
			return StringTable{}, fmt.Errorf("string table entry %d: %w", i, err)
		}

		strs[i] = s
	}

	return StringTable{strings: strs}, nil
}

// EncodeStringTable serializes the sorted, deduplicated strings into the
// on-disk string table layout. The per-string offsets it writes are
// relative to the table's first byte, so the result can be placed at any
// absolute offset. strs must already be sorted strictly ascending by UTF-8
// byte sequence.
func EncodeStringTable(engine endian.EndianEngine, strs []string) []byte {
	n := len(strs)

	headerLen := 4 + (n+1)*4
	total := headerLen
	for _, s := range strs {
		total += len(s) + 1 // NUL terminator
	}

	// A document's hash-key table and string table are each built once per
	// Encode call from the pooled blob-set buffer sized for aggregate table
	// data, rather than the smaller per-node blob pool the tree writer uses.
	bb := pool.GetBlobSetBuffer()
	defer pool.PutBlobSetBuffer(bb)
	bb.ExtendOrGrow(total)
	buf := bb.Slice(0, total)

	buf[0] = byte(format.TagStringTable)
	endian.PutUint24(engine, buf, 1, uint32(n))

	dataOff := headerLen
	for i, s := range strs {
		engine.PutUint32(buf[4+i*4:4+i*4+4], uint32(dataOff))
		copy(buf[dataOff:], s)
		buf[dataOff+len(s)] = 0 // NUL terminator: buf comes from a reused pool buffer, not a fresh zeroed make()
		dataOff += len(s) + 1
	}
	// bound entry, one past the last string's terminator
	engine.PutUint32(buf[4+n*4:4+n*4+4], uint32(dataOff))

	out := make([]byte, total)
	copy(out, buf)

	return out
}
