// Package transport applies general-purpose byte compression to a
// serialized envelope, orthogonal to the bit-packing variant chosen inside
// it. A Codec never inspects the envelope's structure: it only sees bytes.
package transport

import "fmt"

// Kind identifies a transport compression algorithm.
type Kind string

const (
	NoOp Kind = "none"
	S2   Kind = "s2"
	LZ4  Kind = "lz4"
	Zstd Kind = "zstd"
)

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice produced by the matching
// Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
	Kind() Kind
}

// New returns the Codec for the named kind. An empty string is treated as
// NoOp.
func New(kind Kind) (Codec, error) {
	if kind == "" {
		kind = NoOp
	}
	switch kind {
	case NoOp:
		return NewNoOpCodec(), nil
	case S2:
		return NewS2Codec(), nil
	case LZ4:
		return NewLZ4Codec(), nil
	case Zstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("transport: unknown codec %q", kind)
	}
}

// Stats describes the effect of one compression pass.
type Stats struct {
	Kind           Kind
	OriginalSize   int
	CompressedSize int
}

// Ratio is CompressedSize / OriginalSize; 0 if OriginalSize is 0.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}
