// Package byml implements the BYML/BYAML binary tree format: a parser that
// materializes a document into a node.Node tree, and a writer that lays one
// back out as bytes.
//
// # Reading
//
// Parse requires an already-decompressed buffer and fails on anything that
// isn't valid BYML. Decode additionally recognizes a leading Yaz0 envelope
// and transparently decompresses it first, for callers that don't want to
// special-case compressed archive members themselves.
//
//	root, err := byml.Decode(data)
//
// # Writing
//
// Encode walks a node.Node tree, harvests and sorts its string/key tables,
// and lays out a complete document. Functional options select the version,
// byte order, and an optional CLI-style output compression envelope:
//
//	data, err := byml.Encode(root,
//	    byml.WithVersion(2),
//	    byml.WithBigEndian(),
//	)
//
// NewEncoder/NewDecoder expose the same behavior as long-lived values when
// a caller wants to validate options once and reuse them.
package byml
