package transport

import (
	"errors"

	"github.com/pierrec/lz4/v4"
)

// LZ4Codec sits between S2 and Zstd on the speed/ratio curve. A CLI
// invocation compresses or decompresses exactly one envelope per process,
// so this codec allocates a fresh lz4.Compressor per call rather than
// pooling one: there is no server loop here for a pool to amortize against.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func NewLZ4Codec() LZ4Codec { return LZ4Codec{} }

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var lc lz4.Compressor
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// Decompress grows its scratch buffer geometrically since LZ4 block
// decompression needs the destination pre-sized and the envelope format
// does not carry the original length out of band.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024
	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}
			return nil, err
		}
		return buf[:n], nil
	}
	return nil, lz4.ErrInvalidSourceShortBuffer
}

func (LZ4Codec) Kind() Kind { return LZ4 }
