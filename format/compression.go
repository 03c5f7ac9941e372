package format

// CompressionType identifies the compression envelope wrapping a document,
// as selected by the CLI tooling around the core codec.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionYaz0
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionYaz0:
		return "Yaz0"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
