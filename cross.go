package bitpack

// CrossCodec packs values contiguously in a single bit stream with no
// alignment padding: total storage is exactly n*k bits. A value may straddle
// two words, so Get costs two word loads, a shift, an OR, and a mask instead
// of NonCross's single load.
type CrossCodec struct {
	k     int
	n     int
	words []uint32
}

var _ Codec = (*CrossCodec)(nil)

// NewCrossCodec returns an empty CrossCodec; call Compress before Get or
// Decompress.
func NewCrossCodec() *CrossCodec {
	return &CrossCodec{}
}

// Compress packs values, replacing any prior state.
func (c *CrossCodec) Compress(values []uint32) error {
	n := len(values)
	if n == 0 {
		c.k, c.n, c.words = 0, 0, nil
		return nil
	}

	var maxV uint32
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}

	k := bitsFor(maxV)
	if k == 0 {
		k = 1
	}

	words := packCross(values, k)
	c.k, c.n, c.words = k, n, words
	return nil
}

// Decompress reconstructs the full array without mutating the codec.
func (c *CrossCodec) Decompress() []uint32 {
	if c.n == 0 {
		return []uint32{}
	}
	return unpackCross(c.words, c.k, c.n)
}

// Get returns the value at index i in O(1) time.
func (c *CrossCodec) Get(i int) (uint32, error) {
	if i < 0 || i >= c.n {
		return 0, ErrIndexRange
	}
	return getCross(c.words, c.k, i), nil
}

// K returns the bit width per slot.
func (c *CrossCodec) K() int { return c.k }

// N returns the number of elements packed.
func (c *CrossCodec) N() int { return c.n }

// Variant identifies this codec in an envelope's "variant" field.
func (c *CrossCodec) Variant() string { return VariantCross }

// Words exposes the packed word stream, used by the envelope serialiser.
func (c *CrossCodec) Words() []uint32 { return c.words }

// loadCross restores a CrossCodec from envelope fields, bypassing Compress.
func loadCross(n, k int, words []uint32) *CrossCodec {
	return &CrossCodec{k: k, n: n, words: words}
}
