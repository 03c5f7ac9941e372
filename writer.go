package byml

import (
	"fmt"

	"github.com/nintendotools/byml/compress"
	"github.com/nintendotools/byml/endian"
	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/format"
	"github.com/nintendotools/byml/internal/options"
	"github.com/nintendotools/byml/internal/pool"
	"github.com/nintendotools/byml/node"
	"github.com/nintendotools/byml/section"
)

// Encoder lays out a typed tree as a complete BYML document according to a
// fixed set of options, validated once at construction.
type Encoder struct {
	cfg *config
}

// NewEncoder validates opts and returns an Encoder ready to lay out trees.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Encode lays out root as a complete document.
func (e *Encoder) Encode(root node.Node) ([]byte, error) {
	return encodeDocument(root, e.cfg)
}

// Encode lays out root as a complete BYML document. It is shorthand for
// NewEncoder(opts...).Encode(root) for one-shot callers.
func Encode(root node.Node, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(root)
}

func encodeDocument(root node.Node, cfg *config) ([]byte, error) {
	if root.Tag() != format.TagArray && root.Tag() != format.TagHash {
		return nil, fmt.Errorf("%w: root is %s, not Array or Hash", errs.ErrRootNotContainer, root.Tag())
	}

	engine := endian.GetLittleEndianEngine()
	if cfg.byteOrder == format.BigEndian {
		engine = endian.GetBigEndianEngine()
	}

	strs := section.NewStringSet()
	keys := section.NewStringSet()
	harvest(root, strs, keys)

	sortedStrings := strs.Sorted()
	sortedKeys := keys.Sorted()

	w := &treeWriter{
		engine:    engine,
		buf:       pool.GetBlobBuffer(),
		stringIdx: section.Index(sortedStrings),
		keyIdx:    section.Index(sortedKeys),
	}
	defer pool.PutBlobBuffer(w.buf)

	w.buf.MustWrite(make([]byte, format.HeaderSize))

	var hashKeyOff, stringOff uint32
	if len(sortedKeys) > 0 {
		hashKeyOff = uint32(w.buf.Len())
		w.buf.MustWrite(section.EncodeStringTable(engine, sortedKeys))
		w.padAlign4()
	}
	if len(sortedStrings) > 0 {
		stringOff = uint32(w.buf.Len())
		w.buf.MustWrite(section.EncodeStringTable(engine, sortedStrings))
		w.padAlign4()
	}

	rootOff := uint32(w.buf.Len())
	if err := w.writeNodeBody(root); err != nil {
		return nil, err
	}
	if err := w.drain(); err != nil {
		return nil, err
	}
	w.padAlign4()

	hdr := section.Header{
		ByteOrder:  cfg.byteOrder,
		Version:    cfg.version,
		HashKeyOff: hashKeyOff,
		StringOff:  stringOff,
		RootOff:    rootOff,
	}
	copy(w.buf.Slice(0, format.HeaderSize), hdr.Bytes())

	// Copy out of the pooled buffer before it's returned to the pool by the
	// deferred PutBlobBuffer above: the pool may hand w.buf's backing array
	// to the next Encode call, which would otherwise overwrite bytes still
	// referenced by our caller.
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	if cfg.compression != format.CompressionNone {
		codec, err := compress.CreateCodec(cfg.compression, "document")
		if err != nil {
			return nil, err
		}

		return codec.Compress(out)
	}

	return out, nil
}

// harvest walks n, inserting every String value into strs and every Hash
// key into keys.
func harvest(n node.Node, strs, keys *section.StringSet) {
	switch v := n.(type) {
	case node.String:
		strs.Add(string(v))
	case node.Array:
		for _, child := range v {
			harvest(child, strs, keys)
		}
	case node.Hash:
		for _, e := range v {
			keys.Add(e.Key)
			harvest(e.Value, strs, keys)
		}
	}
}

// pendingWrite is a container/boxed child awaiting layout: its placeholder
// slot at placeholderOff will be patched with its eventual start offset
// once drain lays it out.
type pendingWrite struct {
	n              node.Node
	placeholderOff int
}

// treeWriter lays out one document's node graph using the deferred-queue
// technique: a container writes its own inline/placeholder slots
// immediately and enqueues its container/boxed children, which are laid
// out breadth-first as the queue drains.
type treeWriter struct {
	engine    endian.EndianEngine
	buf       *pool.ByteBuffer
	stringIdx map[string]uint32
	keyIdx    map[string]uint32
	queue     []pendingWrite
}

func (w *treeWriter) padAlign4() {
	for w.buf.Len()%4 != 0 {
		w.buf.MustWrite([]byte{0})
	}
}

func (w *treeWriter) patchUint32(off int, v uint32) {
	w.engine.PutUint32(w.buf.Slice(off, off+4), v)
}

func (w *treeWriter) enqueue(n node.Node, placeholderOff int) {
	w.queue = append(w.queue, pendingWrite{n: n, placeholderOff: placeholderOff})
}

func (w *treeWriter) drain() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.padAlign4()
		offset := w.buf.Len()

		if err := w.writeNodeBody(item.n); err != nil {
			return err
		}

		w.patchUint32(item.placeholderOff, uint32(offset))
	}

	return nil
}

// writeNodeBody writes the standalone body of a node laid out by offset:
// an Array/Hash container, or a boxed Int64/UInt64/Double scalar.
func (w *treeWriter) writeNodeBody(n node.Node) error {
	switch v := n.(type) {
	case node.Array:
		return w.writeArray(v)
	case node.Hash:
		return w.writeHash(v)
	case node.Int64, node.UInt64, node.Double:
		buf, err := node.BoxedBytes(w.engine, v)
		if err != nil {
			return err
		}
		w.buf.MustWrite(buf[:])

		return nil
	default:
		return fmt.Errorf("%w: %T is not a container or boxed scalar", errs.ErrBadValueType, n)
	}
}

func (w *treeWriter) writeArray(arr node.Array) error {
	n := len(arr)

	w.buf.MustWrite([]byte{byte(format.TagArray)})

	var countBuf [3]byte
	endian.PutUint24(w.engine, countBuf[:], 0, uint32(n))
	w.buf.MustWrite(countBuf[:])

	tags := make([]byte, n)
	for i, child := range arr {
		tags[i] = byte(child.Tag())
	}
	w.buf.MustWrite(tags)
	w.padAlign4()

	for i, child := range arr {
		if err := w.writeSlot(child); err != nil {
			return fmt.Errorf("array[%d]: %w", i, err)
		}
	}

	return nil
}

func (w *treeWriter) writeHash(h node.Hash) error {
	n := len(h)

	w.buf.MustWrite([]byte{byte(format.TagHash)})

	var countBuf [3]byte
	endian.PutUint24(w.engine, countBuf[:], 0, uint32(n))
	w.buf.MustWrite(countBuf[:])

	for _, e := range h {
		keyIdx, ok := w.keyIdx[e.Key]
		if !ok {
			return fmt.Errorf("%w: key %q missing from harvested hash-key table", errs.ErrBadValueType, e.Key)
		}

		var entryHead [4]byte
		endian.PutUint24(w.engine, entryHead[:], 0, keyIdx)
		entryHead[3] = byte(e.Value.Tag())
		w.buf.MustWrite(entryHead[:])

		if err := w.writeSlot(e.Value); err != nil {
			return fmt.Errorf("hash[%q]: %w", e.Key, err)
		}
	}

	return nil
}

// writeSlot writes one container's 4-byte value slot: inline for value
// types, or a placeholder enqueued for later layout otherwise.
func (w *treeWriter) writeSlot(n node.Node) error {
	tag := n.Tag()

	switch {
	case tag == format.TagString:
		s := string(n.(node.String))
		idx, ok := w.stringIdx[s]
		if !ok {
			return fmt.Errorf("%w: string %q missing from harvested string table", errs.ErrBadValueType, s)
		}

		var buf [4]byte
		w.engine.PutUint32(buf[:], idx)
		w.buf.MustWrite(buf[:])

		return nil

	case tag.IsValue():
		buf, err := node.InlineBytes(w.engine, n)
		if err != nil {
			return err
		}
		w.buf.MustWrite(buf[:])

		return nil

	default:
		placeholderOff := w.buf.Len()
		w.buf.MustWrite([]byte{0xff, 0xff, 0xff, 0xff})
		w.enqueue(n, placeholderOff)

		return nil
	}
}
