package byml

import (
	"fmt"

	"github.com/nintendotools/byml/errs"
	"github.com/nintendotools/byml/format"
	"github.com/nintendotools/byml/internal/options"
)

// config holds the writer's document-level choices: byte order, format
// version, and an optional output compression envelope.
type config struct {
	byteOrder   format.ByteOrder
	version     uint16
	compression format.CompressionType
}

func defaultConfig() *config {
	return &config{
		byteOrder:   format.LittleEndian,
		version:     2,
		compression: format.CompressionNone,
	}
}

func (c *config) validate() error {
	if c.version < format.MinVersion || c.version > format.MaxVersion {
		return fmt.Errorf("%w: %d", errs.ErrBadVersion, c.version)
	}
	if c.version == 1 && c.byteOrder == format.BigEndian {
		return errs.ErrEndianVersionMismatch
	}

	return nil
}

// Option configures an Encoder.
type Option = options.Option[*config]

// WithVersion selects the BYML format version (1, 2, or 3). The default is 2.
func WithVersion(v uint16) Option {
	return options.New[*config](func(c *config) error {
		if v < format.MinVersion || v > format.MaxVersion {
			return fmt.Errorf("%w: %d", errs.ErrBadVersion, v)
		}
		c.version = v

		return nil
	})
}

// WithBigEndian selects big-endian byte order (magic "BY"). Incompatible
// with version 1.
func WithBigEndian() Option {
	return options.NoError[*config](func(c *config) { c.byteOrder = format.BigEndian })
}

// WithLittleEndian selects little-endian byte order (magic "YB"). This is
// the default.
func WithLittleEndian() Option {
	return options.NoError[*config](func(c *config) { c.byteOrder = format.LittleEndian })
}

// WithCompression wraps the encoded document in the given compression
// envelope after layout. The default is format.CompressionNone.
func WithCompression(t format.CompressionType) Option {
	return options.NoError[*config](func(c *config) { c.compression = t })
}
