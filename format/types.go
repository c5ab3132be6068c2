package format

import (
	"fmt"
	"strings"
)

type (
	CompressionType uint8
	ColumnKind      uint8
	OutputType      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed vocabulary payload.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

const (
	KindUnknown        ColumnKind = 0x0 // KindUnknown represents a column shape that cannot be encoded.
	KindString         ColumnKind = 0x1 // KindString represents a single optional string per record.
	KindStringSequence ColumnKind = 0x2 // KindStringSequence represents a sequence of strings per record.
	KindNTVSequence    ColumnKind = 0x3 // KindNTVSequence represents a sequence of name/term/value triples per record.
)

const (
	OutputUnknown OutputType = 0x0 // OutputUnknown represents an undeclared output type.
	OutputInt32   OutputType = 0x1 // OutputInt32 represents 32-bit integer tensors.
	OutputInt64   OutputType = 0x2 // OutputInt64 represents 64-bit integer tensors.
	OutputFloat32 OutputType = 0x3 // OutputFloat32 represents 32-bit float tensors.
	OutputFloat64 OutputType = 0x4 // OutputFloat64 represents 64-bit float tensors.
	OutputString  OutputType = 0x5 // OutputString represents string tensors.
)

func (c CompressionType) String() string {
	switch c {
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

// Extension returns the file extension used for vocabulary files stored with this compression.
// Uncompressed vocabularies use ".txt".
func (c CompressionType) Extension() string {
	switch c {
	case CompressionNone:
		return ".txt"
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionFromPath detects the compression of a vocabulary file from its extension.
// Paths without a known compressed extension are treated as uncompressed.
func CompressionFromPath(path string) CompressionType {
	switch {
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		return CompressionZstd
	case strings.HasSuffix(path, ".s2"):
		return CompressionS2
	case strings.HasSuffix(path, ".lz4"):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

func (k ColumnKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringSequence:
		return "string_array"
	case KindNTVSequence:
		return "ntv_array"
	default:
		return "unknown"
	}
}

// ParseColumnKind parses the textual column kind used in schema files.
func ParseColumnKind(s string) (ColumnKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return KindString, nil
	case "string_array", "array<string>":
		return KindStringSequence, nil
	case "ntv_array", "array<ntv>":
		return KindNTVSequence, nil
	default:
		return KindUnknown, fmt.Errorf("unknown column kind: %q", s)
	}
}

func (o OutputType) String() string {
	switch o {
	case OutputInt32:
		return "int32"
	case OutputInt64:
		return "int64"
	case OutputFloat32:
		return "float32"
	case OutputFloat64:
		return "float64"
	case OutputString:
		return "string"
	default:
		return "unknown"
	}
}

// IsInteger reports whether the output type is an integer tensor type.
func (o OutputType) IsInteger() bool {
	return o == OutputInt32 || o == OutputInt64
}

// ParseOutputType parses the textual output type used in schema files.
// "int" and "long" are accepted as aliases of int32 and int64.
func ParseOutputType(s string) (OutputType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int32", "int":
		return OutputInt32, nil
	case "int64", "long":
		return OutputInt64, nil
	case "float32", "float":
		return OutputFloat32, nil
	case "float64", "double":
		return OutputFloat64, nil
	case "string":
		return OutputString, nil
	default:
		return OutputUnknown, fmt.Errorf("unknown output type: %q", s)
	}
}
