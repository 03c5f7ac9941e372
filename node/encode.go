package node

import (
	"fmt"

	"github.com/nintendotools/byml/endian"
	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/format"
)

// InlineBytes encodes a value-type node (everything format.Tag.IsValue
// reports true for) into its 4-byte inline payload. The caller is
// responsible for resolving String nodes to a value-string-table index
// before calling this (pass node.UInt(index) in that case).
func InlineBytes(engine endian.EndianEngine, n Node) ([4]byte, error) {
	var buf [4]byte

	switch v := n.(type) {
	case Null:
		// zero payload
	case Bool:
		val := uint32(0)
		if v {
			val = 1
		}
		engine.PutUint32(buf[:], val)
	case Int:
		engine.PutUint32(buf[:], uint32(int32(v)))
	case UInt:
		engine.PutUint32(buf[:], uint32(v))
	case Float:
		endian.PutFloat32(engine, buf[:], 0, float32(v))
	case String:
		return buf, fmt.Errorf("%w: String node requires a resolved table index", errs.ErrBadValueType)
	default:
		return buf, fmt.Errorf("%w: %T is not a value-type node", errs.ErrBadValueType, n)
	}

	return buf, nil
}

// BoxedBytes encodes a boxed-scalar node (Int64, UInt64, Double) into its
// standalone 8-byte payload, written at the offset referenced by the
// container's 4-byte slot.
func BoxedBytes(engine endian.EndianEngine, n Node) ([8]byte, error) {
	var buf [8]byte

	switch v := n.(type) {
	case Int64:
		engine.PutUint64(buf[:], uint64(v))
	case UInt64:
		engine.PutUint64(buf[:], uint64(v))
	case Double:
		endian.PutFloat64(engine, buf[:], 0, float64(v))
	default:
		return buf, fmt.Errorf("%w: %T is not a boxed scalar node", errs.ErrBadValueType, n)
	}

	return buf, nil
}

// DecodeInline decodes a value-type node from its 4-byte inline payload,
// given its tag. format.TagString is not decoded here: its payload is an
// index the caller resolves via the value string table, and passing it
// returns an errs.ErrUnknownTag error.
func DecodeInline(engine endian.EndianEngine, tag format.Tag, raw [4]byte) (Node, error) {
	val := engine.Uint32(raw[:])

	switch tag {
	case format.TagNull:
		return Null{}, nil
	case format.TagBool:
		return Bool(val != 0), nil
	case format.TagInt:
		return Int(int32(val)), nil
	case format.TagUInt:
		return UInt(val), nil
	case format.TagFloat:
		f, err := endian.ReadFloat32(engine, raw[:], 0)
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x is not an inline value tag", errs.ErrUnknownTag, uint8(tag))
	}
}

// DecodeBoxed decodes a boxed scalar node (Int64, UInt64, Double) from the
// 8 bytes at its referenced offset.
func DecodeBoxed(engine endian.EndianEngine, tag format.Tag, data []byte, off int) (Node, error) {
	if off < 0 || off+8 > len(data) {
		return nil, errs.ErrTruncated
	}

	switch tag {
	case format.TagInt64:
		return Int64(int64(engine.Uint64(data[off : off+8]))), nil
	case format.TagUInt64:
		return UInt64(engine.Uint64(data[off : off+8])), nil
	case format.TagDouble:
		f, err := endian.ReadFloat64(engine, data, off)
		if err != nil {
			return nil, err
		}
		return Double(f), nil
	default:
		return nil, fmt.Errorf("%w: 0x%02x is not a boxed scalar tag", errs.ErrUnknownTag, uint8(tag))
	}
}
