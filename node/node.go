// Package node defines the typed in-memory BYML tree: a sum type over the
// node tags of the format package, plus the classifier that maps a host
// scalar value to its BYML tag.
package node

import "github.com/nintendotools/byml/format"

// Node is any value that can appear in a BYML tree.
type Node interface {
	Tag() format.Tag
}

// Null is the BYML Null node; it carries no payload.
type Null struct{}

func (Null) Tag() format.Tag { return format.TagNull }

// Bool is a BYML Bool node.
type Bool bool

func (Bool) Tag() format.Tag { return format.TagBool }

// Int is a BYML 32-bit signed Int node.
type Int int32

func (Int) Tag() format.Tag { return format.TagInt }

// UInt is a BYML 32-bit unsigned UInt node.
type UInt uint32

func (UInt) Tag() format.Tag { return format.TagUInt }

// Int64 is a BYML 64-bit signed Int64 node, stored boxed by offset.
type Int64 int64

func (Int64) Tag() format.Tag { return format.TagInt64 }

// UInt64 is a BYML 64-bit unsigned UInt64 node, stored boxed by offset.
type UInt64 uint64

func (UInt64) Tag() format.Tag { return format.TagUInt64 }

// Float is a BYML IEEE-754 binary32 Float node.
type Float float32

func (Float) Tag() format.Tag { return format.TagFloat }

// Double is a BYML IEEE-754 binary64 Double node, stored boxed by offset.
type Double float64

func (Double) Tag() format.Tag { return format.TagDouble }

// String is a BYML String node; its on-disk payload is an index into the
// value string table, resolved to this Go string at parse time.
type String string

func (String) Tag() format.Tag { return format.TagString }

// Array is an ordered, heterogeneous sequence of nodes. Input order is
// preserved on both parse and write.
type Array []Node

func (Array) Tag() format.Tag { return format.TagArray }

// Entry is one key/value pair of a Hash, in the order the Hash preserves.
type Entry struct {
	Key   string
	Value Node
}

// Hash is an ordered mapping from string keys to nodes. Unlike a bare Go
// map, Hash preserves insertion order: the writer emits entries in this
// order and only the hash-key table (not the Hash itself) gets sorted.
type Hash []Entry

func (Hash) Tag() format.Tag { return format.TagHash }

// Get returns the value for key and whether it was found.
func (h Hash) Get(key string) (Node, bool) {
	for _, e := range h {
		if e.Key == key {
			return e.Value, true
		}
	}

	return nil, false
}

// Set appends or replaces the entry for key, preserving first-seen
// position on replace.
func (h *Hash) Set(key string, value Node) {
	for i, e := range *h {
		if e.Key == key {
			(*h)[i].Value = value
			return
		}
	}

	*h = append(*h, Entry{Key: key, Value: value})
}
