package bitpack

// NonCrossCodec packs values at a fixed bit width k, capacity = floor(W/k)
// slots per word, and never lets a slot straddle a word boundary. Reads are
// a single word load, a shift, and a mask, at the cost of up to W-cap*k
// wasted bits per word (worst case k=17, 47% waste; zero waste when k
// divides W evenly).
type NonCrossCodec struct {
	k     int
	n     int
	words []uint32
}

var _ Codec = (*NonCrossCodec)(nil)

// NewNonCrossCodec returns an empty NonCrossCodec; call Compress before Get
// or Decompress.
func NewNonCrossCodec() *NonCrossCodec {
	return &NonCrossCodec{}
}

// Compress packs values, replacing any prior state. k is computed from the
// maximum value present, clamped to 1 for a non-empty all-zero array so Get
// remains well-defined.
func (c *NonCrossCodec) Compress(values []uint32) error {
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

	words := packNonCross(values, k)
	c.k, c.n, c.words = k, n, words
	return nil
}

// Decompress reconstructs the full array without mutating the codec.
func (c *NonCrossCodec) Decompress() []uint32 {
	if c.n == 0 {
		return []uint32{}
	}
	return unpackNonCross(c.words, c.k, c.n)
}

// Get returns the value at index i in O(1) time.
func (c *NonCrossCodec) Get(i int) (uint32, error) {
	if i < 0 || i >= c.n {
		return 0, ErrIndexRange
	}
	return getNonCross(c.words, c.k, i), nil
}

// K returns the bit width per slot.
func (c *NonCrossCodec) K() int { return c.k }

// N returns the number of elements packed.
func (c *NonCrossCodec) N() int { return c.n }

// Variant identifies this codec in an envelope's "variant" field.
func (c *NonCrossCodec) Variant() string { return VariantNonCross }

// Words exposes the packed word stream, used by the envelope serialiser.
func (c *NonCrossCodec) Words() []uint32 { return c.words }

// loadNonCross restores a NonCrossCodec from envelope fields, bypassing
// Compress. Used by the envelope loader; it trusts the caller (Load in
// envelope.go) to have already validated n/k/len(words) consistency.
func loadNonCross(n, k int, words []uint32) *NonCrossCodec {
	return &NonCrossCodec{k: k, n: n, words: words}
}
