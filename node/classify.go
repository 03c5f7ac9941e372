package node

import (
	"fmt"
	"math"
	"math/big"

	"github.com/nintendotools/byml/errs"
)

// FromValue converts a host Go value into a Node, applying the BYML
// coercion rules:
//
//   - bool classifies as Bool regardless of its underlying value, and is
//     checked before any integer kind so a plain integer 1 is never
//     mistaken for true.
//   - signed/unsigned integers with bit-width <= 32 become Int (if
//     negative) or UInt; integers with 32 < bit-width <= 64 become Int64
//     (if negative) or UInt64; wider integers are an error.
//   - float32/float64 become Float if the value round-trips losslessly
//     through float32 (compared as float64), else Double. NaN never
//     round-trips and is therefore always Double.
//   - string becomes String, nil becomes Null.
//   - []any becomes Array and map[string]any becomes Hash (entries in Go's
//     map iteration order, which is unspecified); a value that is already
//     a Node (Array, Hash or any other node built by the caller) passes
//     through unchanged.
func FromValue(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Node:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float32:
		return classifyFloat(float64(x)), nil
	case float64:
		return classifyFloat(x), nil
	case int:
		return classifySigned(int64(x))
	case int8:
		return classifySigned(int64(x))
	case int16:
		return classifySigned(int64(x))
	case int32:
		return classifySigned(int64(x))
	case int64:
		return classifySigned(x)
	case uint:
		return classifyUnsigned(uint64(x))
	case uint8:
		return classifyUnsigned(uint64(x))
	case uint16:
		return classifyUnsigned(uint64(x))
	case uint32:
		return classifyUnsigned(uint64(x))
	case uint64:
		return classifyUnsigned(x)
	case *big.Int:
		return classifyBigInt(x)
	case []any:
		arr := make(Array, 0, len(x))
		for i, elem := range x {
			n, err := FromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr = append(arr, n)
		}
		return arr, nil
	case map[string]any:
		h := make(Hash, 0, len(x))
		for k, elem := range x {
			n, err := FromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			h = append(h, Entry{Key: k, Value: n})
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrBadValueType, v)
	}
}

func classifySigned(v int64) (Node, error) {
	switch {
	case v >= 0:
		return classifyUnsigned(uint64(v))
	case v >= math.MinInt32:
		return Int(v), nil
	default:
		return Int64(v), nil
	}
}

func classifyUnsigned(v uint64) (Node, error) {
	switch {
	case v <= math.MaxUint32:
		return UInt(v), nil
	default:
		return UInt64(v), nil
	}
}

// classifyBigInt handles integers too wide for any Go integer type,
// applying the same sign-aware width demotion as classifySigned/
// classifyUnsigned and reporting errs.ErrIntegerTooWide past 64 bits.
func classifyBigInt(v *big.Int) (Node, error) {
	if v.BitLen() > 64 {
		return nil, fmt.Errorf("%w: %d needs %d bits", errs.ErrIntegerTooWide, v, v.BitLen())
	}

	if v.Sign() < 0 {
		return classifySigned(v.Int64())
	}

	return classifyUnsigned(v.Uint64())
}

func classifyFloat(v float64) Node {
	if float64(float32(v)) == v {
		return Float(float32(v))
	}

	return Double(v)
}
