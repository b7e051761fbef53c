package format

import "fmt"

type (
	SchemaVariant   uint8
	CompressionType uint8
)

const (
	// SchemaBase is the layout written by the metrics-enabled solver build:
	// a 16-byte record header followed by 96-byte worker blocks.
	SchemaBase SchemaVariant = 0x1
	// SchemaExtended adds the global conflict counter and path checksum to
	// the record header, and per-worker conflict/allocation counters, for a
	// 32-byte header followed by 112-byte worker blocks.
	SchemaExtended SchemaVariant = 0x2

	CompressionAuto CompressionType = 0x0 // CompressionAuto sniffs the codec from the file extension.
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed log.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.
)

func (v SchemaVariant) String() string {
	switch v {
	case SchemaBase:
		return "Base"
	case SchemaExtended:
		return "Extended"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionAuto:
		return "Auto"
	case CompressionNone:
		return "None"
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

// ParseSchemaVariant converts a CLI-level variant name into a SchemaVariant.
func ParseSchemaVariant(name string) (SchemaVariant, error) {
	switch name {
	case "base":
		return SchemaBase, nil
	case "extended":
		return SchemaExtended, nil
	default:
		return 0, fmt.Errorf("unknown schema variant: %q", name)
	}
}

// ParseCompression converts a CLI-level compression name into a CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch name {
	case "auto":
		return CompressionAuto, nil
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression: %q", name)
	}
}
