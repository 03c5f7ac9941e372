// Package section defines the low-level binary structures of the BYML
// document: the fixed 16-byte Header and the two deduplicated string
// tables (hash-key table and value string table).
//
// # Header layout (16 bytes)
//
//	Offset | Field              | Type | Meaning
//	-------|--------------------|------|------------------------------------
//	0      | magic "BY"/"YB"    | [2]byte | BY=big-endian, YB=little-endian
//	2      | version            | uint16  | 1, 2, or 3
//	4      | hash-key offset    | uint32  | 0 if the table is absent
//	8      | string offset      | uint32  | 0 if the table is absent
//	12     | root offset        | uint32  | absolute offset of the root node
//
// # String table layout
//
// A string table begins with the tag byte 0xC2, a 24-bit count N, and N+1
// uint32 offsets relative to the table's own start byte. The first N
// offsets locate each string's first byte; the final offset is one past
// the last string's NUL terminator and serves only as a bound.
package section
