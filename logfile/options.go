package logfile

import (
	"github.com/arloliu/solvemon/endian"
	"github.com/arloliu/solvemon/format"
	"github.com/arloliu/solvemon/internal/options"
)

// DefaultMaxWorkers matches the producer's default build configuration.
const DefaultMaxWorkers = 16

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// WithMaxWorkers sets the producer's configured worker count. The value must
// match the build that wrote the log; it cannot be discovered from the file.
func WithMaxWorkers(n int) Option {
	return options.New(func(d *Decoder) error {
		d.maxWorkers = n
		return nil
	})
}

// WithSchemaVariant selects the record layout variant.
func WithSchemaVariant(v format.SchemaVariant) Option {
	return options.New(func(d *Decoder) error {
		d.variant = v
		return nil
	})
}

// WithCompression forces a specific codec instead of sniffing the file
// extension. Use format.CompressionNone for raw logs with a misleading name.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(d *Decoder) error {
		d.compression = c
		return nil
	})
}

// WithLittleEndian selects little-endian field decoding (the default).
func WithLittleEndian() Option {
	return options.New(func(d *Decoder) error {
		d.engine = endian.GetLittleEndianEngine()
		return nil
	})
}

// WithBigEndian selects big-endian field decoding for logs captured on
// big-endian hosts.
func WithBigEndian() Option {
	return options.New(func(d *Decoder) error {
		d.engine = endian.GetBigEndianEngine()
		return nil
	})
}
