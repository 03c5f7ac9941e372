// Package errs defines the sentinel errors returned by the byml codec.
//
// Every fatal condition in the codec is one of these sentinels, wrapped
// with call-site context via fmt.Errorf("%w: ...", errs.ErrX, ...) so
// callers can still match on the sentinel with errors.Is.
package errs

import "errors"

var (
	// ErrBadMagic is returned when a document's first two bytes are
	// neither "BY" nor "YB".
	ErrBadMagic = errors.New("byml: bad magic")

	// ErrBadVersion is returned when the header version is outside [1,3].
	ErrBadVersion = errors.New("byml: unsupported version")

	// ErrEndianVersionMismatch is returned for a big-endian document
	// claiming version 1, which is little-endian only.
	ErrEndianVersionMismatch = errors.New("byml: version 1 is little-endian only")

	// ErrTruncated is returned when a read would go past the end of the
	// buffer.
	ErrTruncated = errors.New("byml: truncated buffer")

	// ErrUnknownTag is returned when a byte that should be a node tag
	// does not match any tag in the format.
	ErrUnknownTag = errors.New("byml: unknown node tag")

	// ErrIndexOutOfRange is returned when a string or hash-key index is
	// not within its table's bounds.
	ErrIndexOutOfRange = errors.New("byml: index out of range")

	// ErrBadStringTableTag is returned when a string table does not
	// begin with the StringTable tag byte.
	ErrBadStringTableTag = errors.New("byml: bad string table tag")

	// ErrBadUTF8 is returned when a table string is not valid UTF-8.
	ErrBadUTF8 = errors.New("byml: invalid utf-8 in string table")

	// ErrRootNotContainer is returned when the root node is a value or
	// Null tag instead of Array or Hash.
	ErrRootNotContainer = errors.New("byml: root node must be an array or hash")

	// ErrBadValueType is returned when the writer cannot classify a host
	// value into any BYML tag.
	ErrBadValueType = errors.New("byml: unsupported value type")

	// ErrIntegerTooWide is returned when an integer needs more than 64
	// meaningful bits.
	ErrIntegerTooWide = errors.New("byml: integer exceeds 64 bits")

	// ErrBadYaz0Magic is returned when a buffer claimed to be Yaz0 does
	// not start with the Yaz0 magic.
	ErrBadYaz0Magic = errors.New("byml: bad Yaz0 magic")

	// ErrYaz0Truncated is returned when a Yaz0 stream ends before its
	// declared decompressed size is reached.
	ErrYaz0Truncated = errors.New("byml: truncated Yaz0 stream")

	// ErrUnsupportedCompression is returned by CreateCodec for an
	// unrecognized format.CompressionType.
	ErrUnsupportedCompression = errors.New("byml: unsupported compression type")
)
