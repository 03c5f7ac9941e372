package byml

import (
	"fmt"

	"github.com/nintendotools/byml/compress"
	"github.com/nintendotools/byml/endian"
	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/format"
	"github.com/nintendotools/byml/node"
	"github.com/nintendotools/byml/section"
)

var yaz0Magic = []byte("Yaz0")

// Decoder holds a parsed header and bound string tables for one document,
// ready to materialize the typed tree via Decode.
//
// A Decoder is not reusable across documents and is not safe for
// concurrent use.
type Decoder struct {
	data     []byte
	header   section.Header
	engine   endian.EndianEngine
	hashKeys section.StringTable
	strings  section.StringTable
}

// NewDecoder parses data's header and string tables, transparently
// decompressing a leading Yaz0 envelope first if present.
func NewDecoder(data []byte) (*Decoder, error) {
	return newDecoder(data, true)
}

func newDecoder(data []byte, allowYaz0 bool) (*Decoder, error) {
	if allowYaz0 && len(data) >= 4 && string(data[0:4]) == string(yaz0Magic) {
		decompressed, err := compress.NewYaz0Codec().Decompress(data)
		if err != nil {
			return nil, fmt.Errorf("yaz0 envelope: %w", err)
		}
		data = decompressed
	}

	hdr, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	d := &Decoder{data: data, header: hdr, engine: hdr.Engine()}

	if hdr.HashKeyOff != 0 {
		d.hashKeys, err = section.ParseStringTable(d.engine, data, int(hdr.HashKeyOff))
		if err != nil {
			return nil, fmt.Errorf("hash-key table: %w", err)
		}
	}
	if hdr.StringOff != 0 {
		d.strings, err = section.ParseStringTable(d.engine, data, int(hdr.StringOff))
		if err != nil {
			return nil, fmt.Errorf("value string table: %w", err)
		}
	}

	return d, nil
}

// Header returns the parsed document header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Decode materializes the typed tree rooted at the document's root offset.
func (d *Decoder) Decode() (node.Node, error) {
	p := &treeParser{data: d.data, engine: d.engine, hashKeys: d.hashKeys, strings: d.strings}

	return p.parseRoot(int(d.header.RootOff))
}

// Parse materializes the typed tree from an already-decompressed BYML
// document. It fails if data begins with a Yaz0 envelope rather than a
// BYML header; use Decode for a buffer that may be Yaz0-wrapped.
func Parse(data []byte) (node.Node, error) {
	d, err := newDecoder(data, false)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// Decode materializes the typed tree from data, transparently decompressing
// a leading Yaz0 envelope first if present.
func Decode(data []byte) (node.Node, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// treeParser walks the document's container graph given its bound header
// and string tables.
type treeParser struct {
	data     []byte
	engine   endian.EndianEngine
	hashKeys section.StringTable
	strings  section.StringTable
}

func (p *treeParser) parseRoot(off int) (node.Node, error) {
	if off < 0 || off >= len(p.data) {
		return nil, errs.ErrTruncated
	}

	tag := format.Tag(p.data[off])
	if tag != format.TagArray && tag != format.TagHash {
		return nil, fmt.Errorf("%w: %s", errs.ErrRootNotContainer, tag)
	}

	return p.parseContainer(tag, off)
}

func (p *treeParser) parseContainer(tag format.Tag, off int) (node.Node, error) {
	switch tag {
	case format.TagArray:
		return p.parseArray(off)
	case format.TagHash:
		return p.parseHash(off)
	default:
		return nil, fmt.Errorf("%w: %s is not a container tag", errs.ErrUnknownTag, tag)
	}
}

func (p *treeParser) parseArray(off int) (node.Node, error) {
	if off < 0 || off+4 > len(p.data) {
		return nil, errs.ErrTruncated
	}

	count, err := endian.ReadUint24(p.engine, p.data, off+1)
	if err != nil {
		return nil, err
	}
	n := int(count)

	tagsStart := off + 4
	if tagsStart+n > len(p.data) {
		return nil, errs.ErrTruncated
	}

	valsStart := endian.AlignUp(tagsStart+n, 4)

	arr := make(node.Array, n)
	for i := 0; i < n; i++ {
		childTag := format.Tag(p.data[tagsStart+i])
		slotOff := valsStart + i*4
		if slotOff+4 > len(p.data) {
			return nil, errs.ErrTruncated
		}

		val, err := p.decodeSlot(childTag, p.data[slotOff:slotOff+4])
		if err != nil {
			return nil, fmt.Errorf("array[%d]: %w", i, err)
		}

		arr[i] = val
	}

	return arr, nil
}

func (p *treeParser) parseHash(off int) (node.Node, error) {
	if off < 0 || off+4 > len(p.data) {
		return nil, errs.ErrTruncated
	}

	count, err := endian.ReadUint24(p.engine, p.data, off+1)
	if err != nil {
		return nil, err
	}
	n := int(count)

	entriesStart := off + 4
	h := make(node.Hash, n)
	for i := 0; i < n; i++ {
		entryOff := entriesStart + i*8
		if entryOff+8 > len(p.data) {
			return nil, errs.ErrTruncated
		}

		keyIdx, err := endian.ReadUint24(p.engine, p.data, entryOff)
		if err != nil {
			return nil, err
		}

		key, err := p.hashKeys.At(keyIdx)
		if err != nil {
			return nil, fmt.Errorf("hash entry %d: %w", i, err)
		}

		childTag := format.Tag(p.data[entryOff+3])
		val, err := p.decodeSlot(childTag, p.data[entryOff+4:entryOff+8])
		if err != nil {
			return nil, fmt.Errorf("hash[%q]: %w", key, err)
		}

		h[i] = node.Entry{Key: key, Value: val}
	}

	return h, nil
}

// decodeSlot decodes one 4-byte container slot given its preceding tag
// byte: inline for value types, by-offset for containers and boxed scalars.
func (p *treeParser) decodeSlot(tag format.Tag, raw []byte) (node.Node, error) {
	switch {
	case tag == format.TagString:
		idx := p.engine.Uint32(raw)
		s, err := p.strings.At(idx)
		if err != nil {
			return nil, err
		}

		return node.String(s), nil

	case tag.IsValue():
		var buf [4]byte
		copy(buf[:], raw)

		return node.DecodeInline(p.engine, tag, buf)

	case tag == format.TagArray || tag == format.TagHash:
		off := int(p.engine.Uint32(raw))

		return p.parseContainer(tag, off)

	case tag == format.TagInt64 || tag == format.TagUInt64 || tag == format.TagDouble:
		off := int(p.engine.Uint32(raw))

		return node.DecodeBoxed(p.engine, tag, p.data, off)

	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTag, uint8(tag))
	}
}
