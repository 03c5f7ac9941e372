// Package compress provides the compression codecs used around the BYML
// codec: Nintendo's native Yaz0 envelope, and a set of general-purpose
// algorithms exposed through the CLI's optional output envelope.
//
// # Codecs
//
//   - Yaz0 (format.CompressionYaz0): Nintendo's own LZ77-style envelope.
//     This is the format game archives and legacy ".s"-suffixed BYML files
//     actually use; it is implemented natively since no third-party Go
//     module speaks this bitstream.
//   - Zstd (format.CompressionZstd): best compression ratio of the general-
//     purpose choices, at higher CPU cost.
//   - S2 (format.CompressionS2): a Snappy-derived codec, faster than Zstd
//     at a worse ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression of the bunch.
//   - None (format.CompressionNone): passthrough, for uncompressed output.
//
// # Architecture
//
// Every codec implements the small Compressor/Decompressor pair:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec dispatches on format.CompressionType to select an
// implementation, mirroring the tag-to-implementation switch used for BYML
// node tags elsewhere in this module.
//
// # Usage
//
// byml.Decoder decompresses a Yaz0 envelope transparently before parsing
// the header. The yml2byml CLI selects an envelope for its output via the
// -c flag, defaulting to none except for the legacy ".s" extension
// convention, which always applies Yaz0 regardless of -c.
package compress
