package transport

import "github.com/klauspost/compress/s2"

// S2Codec favors throughput over ratio; it is the cheapest real compressor
// in this package and a reasonable default for envelopes sent over a fast,
// low-latency link.
type S2Codec struct{}

var _ Codec = S2Codec{}

func NewS2Codec() S2Codec { return S2Codec{} }

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return s2.Decode(nil, data)
}

func (S2Codec) Kind() Kind { return S2 }
