// Package yamlbridge maps the typed BYML tree to and from YAML text, using
// a small set of custom tags to carry the width/signedness distinctions
// YAML's own scalar types don't express.
//
// | Tag | Node |
// |-----|------|
// | (untagged int) | Int; UInt, Int64 or UInt64 outside the int32 range |
// | (untagged float) | Float; Double if not exact in float32 |
// | !u | UInt, printed as 0x%08x |
// | !l | Int64 |
// | !ul | UInt64 |
// | !f64 | Double |
//
// This is the only package in the module that imports gopkg.in/yaml.v3;
// the core codec (byml, section, node) has no notion of text interchange.
package yamlbridge

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/node"
	"gopkg.in/yaml.v3"
)

const (
	tagUInt   = "!u"
	tagInt64  = "!l"
	tagUInt64 = "!ul"
	tagDouble = "!f64"
)

// ToYAML converts n into a yaml.Node tree tagged per the package contract.
func ToYAML(n node.Node) (*yaml.Node, error) {
	switch v := n.(type) {
	case node.Null:
		return scalar("!!null", "null"), nil
	case node.Bool:
		return scalar("!!bool", strconv.FormatBool(bool(v))), nil
	case node.Int:
		return scalar("!!int", strconv.FormatInt(int64(v), 10)), nil
	case node.UInt:
		return scalar(tagUInt, fmt.Sprintf("0x%08x", uint32(v))), nil
	case node.Int64:
		return scalar(tagInt64, strconv.FormatInt(int64(v), 10)), nil
	case node.UInt64:
		return scalar(tagUInt64, strconv.FormatUint(uint64(v), 10)), nil
	case node.Float:
		return scalar("!!float", strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case node.Double:
		return scalar(tagDouble, strconv.FormatFloat(float64(v), 'g', -1, 64)), nil
	case node.String:
		return scalar("!!str", string(v)), nil
	case node.Array:
		content := make([]*yaml.Node, len(v))
		for i, child := range v {
			c, err := ToYAML(child)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			content[i] = c
		}

		return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: content}, nil
	case node.Hash:
		content := make([]*yaml.Node, 0, len(v)*2)
		for _, e := range v {
			val, err := ToYAML(e.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", e.Key, err)
			}
			content = append(content, scalar("!!str", e.Key), val)
		}

		return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}, nil
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrBadValueType, n)
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// FromYAML converts a yaml.Node tree back into a node.Node, applying the
// package's tag contract. A bare document node is unwrapped transparently.
func FromYAML(n *yaml.Node) (node.Node, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) != 1 {
			return nil, fmt.Errorf("%w: document node must have exactly one child", errs.ErrBadValueType)
		}

		return FromYAML(n.Content[0])
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	case yaml.SequenceNode:
		arr := make(node.Array, len(n.Content))
		for i, c := range n.Content {
			v, err := FromYAML(c)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr[i] = v
		}

		return arr, nil
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, fmt.Errorf("%w: mapping node has an odd number of children", errs.ErrBadValueType)
		}

		h := make(node.Hash, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: hash key must be a scalar", errs.ErrBadValueType)
			}

			val, err := FromYAML(valNode)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
			}

			h = append(h, node.Entry{Key: keyNode.Value, Value: val})
		}

		return h, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml node kind %v", errs.ErrBadValueType, n.Kind)
	}
}

func scalarFromYAML(n *yaml.Node) (node.Node, error) {
	switch n.Tag {
	case "!!null":
		return node.Null{}, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: bad bool %q: %v", errs.ErrBadValueType, n.Value, err)
		}

		return node.Bool(b), nil
	case tagUInt:
		v, err := strconv.ParseUint(n.Value, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad !u value %q: %v", errs.ErrBadValueType, n.Value, err)
		}

		return node.UInt(uint32(v)), nil
	case tagInt64:
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad !l value %q: %v", errs.ErrBadValueType, n.Value, err)
		}

		return node.Int64(v), nil
	case tagUInt64:
		v, err := strconv.ParseUint(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad !ul value %q: %v", errs.ErrBadValueType, n.Value, err)
		}

		return node.UInt64(v), nil
	case tagDouble:
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad !f64 value %q: %v", errs.ErrBadValueType, n.Value, err)
		}

		return node.Double(v), nil
	case "!!str":
		return node.String(n.Value), nil
	case "!!int":
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad int %q: %v", errs.ErrBadValueType, n.Value, err)
		}
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return node.Int(v), nil
		}

		return node.FromValue(v)
	case "!!float":
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad float %q: %v", errs.ErrBadValueType, n.Value, err)
		}

		return node.FromValue(v)
	default:
		// Untagged scalars from hand-written YAML resolve through the
		// decoder's usual type inference, which yaml.v3 already applies
		// to n.Tag for plain scalars (e.g. "123" decodes with tag
		// "!!int" before this switch ever sees it).
		return node.String(n.Value), nil
	}
}
