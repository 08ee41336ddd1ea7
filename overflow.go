package bitpack

import (
	"math"
	"slices"
)

// DefaultOverflowThreshold is the default rank percentile (95th) used to
// pick the overflow cutoff when the caller does not specify one.
const DefaultOverflowThreshold = 0.95

// OverflowCodec packs a small flag-bit main stream plus a side channel for
// outlier values. Slots are k_main bits wide: the high bit is a flag (0 =
// literal value in the low k_main-1 bits, 1 = index into the overflow array
// in the low k_main-1 bits). The main stream uses a configurable inner
// layout (NonCross or Cross).
//
// If the two-tier form would not be smaller than packing every value at a
// single bit width, Compress falls back to that single-tier packing and
// Variant reports the fallback's name instead of "overflow" — a reader of
// the resulting envelope needs no awareness that a fallback occurred.
type OverflowCodec struct {
	threshold  float64 // rank percentile in (0, 1]
	innerCross bool    // inner layout: true = Cross, false = NonCross

	n        int
	kMain    int // width of each main-stream slot (0 if n == 0)
	kLow     int // kMain - 1, payload bits under the flag
	words    []uint32
	overflow []uint32
	cutoff   uint32 // the threshold value T
	fellBack bool   // true if packed single-tier instead of two-tier
}

var _ Codec = (*OverflowCodec)(nil)

// NewOverflowCodec returns an empty OverflowCodec configured with the given
// rank threshold (in (0, 1]) and inner layout. Call Compress before Get or
// Decompress.
func NewOverflowCodec(threshold float64, innerCross bool) (*OverflowCodec, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, ErrInvalidValue
	}
	return &OverflowCodec{threshold: threshold, innerCross: innerCross}, nil
}

func (c *OverflowCodec) packInner(values []uint32, k int) []uint32 {
	if c.innerCross {
		return packCross(values, k)
	}
	return packNonCross(values, k)
}

func (c *OverflowCodec) getInner(words []uint32, k, i int) uint32 {
	if c.innerCross {
		return getCross(words, k, i)
	}
	return getNonCross(words, k, i)
}

func (c *OverflowCodec) unpackInner(words []uint32, k, n int) []uint32 {
	if c.innerCross {
		return unpackCross(words, k, n)
	}
	return unpackNonCross(words, k, n)
}

func (c *OverflowCodec) innerVariant() string {
	if c.innerCross {
		return VariantCross
	}
	return VariantNonCross
}

// singleTierFallback packs values at a single bit width with no overflow
// side channel, used both for the degenerate all-zero case and whenever
// two-tier packing would not be smaller.
func (c *OverflowCodec) singleTierFallback(values []uint32, k int) {
	c.words = c.packInner(values, k)
	c.kMain = k
	c.kLow = 0
	c.overflow = nil
	c.cutoff = 0
	c.fellBack = true
}

// Compress packs values, replacing any prior state.
func (c *OverflowCodec) Compress(values []uint32) error {
	n := len(values)
	c.n = n
	if n == 0 {
		c.kMain, c.kLow, c.words, c.overflow, c.cutoff, c.fellBack = 0, 0, nil, nil, 0, true
		return nil
	}

	var maxV uint32
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}
	if maxV == 0 {
		c.singleTierFallback(values, 1)
		return nil
	}

	kNoOverflow := bitsFor(maxV)

	sorted := slices.Clone(values)
	slices.Sort(sorted)
	rankIdx := int(math.Ceil(c.threshold*float64(n))) - 1
	if rankIdx < 0 {
		rankIdx = 0
	}
	if rankIdx >= n {
		rankIdx = n - 1
	}
	cutoff := sorted[rankIdx]

	overflowCount := 0
	for _, v := range values {
		if v > cutoff {
			overflowCount++
		}
	}
	if overflowCount == 0 {
		// No outliers at all: degrade to single-tier, per spec.md §8's
		// "overflow arrays with zero outliers" boundary case.
		c.singleTierFallback(values, kNoOverflow)
		return nil
	}

	kLow := bitsFor(cutoff)
	if kLow < 1 {
		kLow = 1
	}
	kMain := kLow + 1

	// Widen kMain (and so kLow) by one bit at a time until the overflow
	// index fits, per spec.md §7's overflow-capacity policy, stopping once
	// widening further could no longer beat single-tier packing. spec.md §9
	// makes j >= 2^k_low the error condition, so overflowCount == 2^k_low is
	// still in range (the valid indices are 0..2^k_low-1, i.e. capacity
	// 2^k_low slots).
	for overflowCount > (1<<uint(kLow)) && kLow < kNoOverflow {
		kLow++
		kMain++
	}

	totalWithOverflow := kMain*n + 32*overflowCount
	totalWithoutOverflow := kNoOverflow * n
	if totalWithOverflow >= totalWithoutOverflow || overflowCount > (1<<uint(kLow)) {
		c.singleTierFallback(values, kNoOverflow)
		return nil
	}

	encoded := make([]uint32, n)
	overflowVals := make([]uint32, 0, overflowCount)
	flagBit := uint32(1) << uint(kMain-1)
	for i, v := range values {
		if v > cutoff {
			j := uint32(len(overflowVals))
			overflowVals = append(overflowVals, v)
			encoded[i] = flagBit | j
		} else {
			encoded[i] = v
		}
	}

	c.words = c.packInner(encoded, kMain)
	c.kMain = kMain
	c.kLow = kMain - 1
	c.overflow = overflowVals
	c.cutoff = cutoff
	c.fellBack = false
	return nil
}

// Decompress reconstructs the full array without mutating the codec.
func (c *OverflowCodec) Decompress() []uint32 {
	if c.n == 0 {
		return []uint32{}
	}
	if c.fellBack {
		return c.unpackInner(c.words, c.kMain, c.n)
	}

	encoded := c.unpackInner(c.words, c.kMain, c.n)
	out := make([]uint32, c.n)
	flagBit := uint32(1) << uint(c.kMain-1)
	lowMask := flagBit - 1
	for i, v := range encoded {
		if v&flagBit != 0 {
			out[i] = c.overflow[v&lowMask]
		} else {
			out[i] = v & lowMask
		}
	}
	return out
}

// Get returns the value at index i in O(1) time.
func (c *OverflowCodec) Get(i int) (uint32, error) {
	if i < 0 || i >= c.n {
		return 0, ErrIndexRange
	}
	if c.fellBack {
		return c.getInner(c.words, c.kMain, i), nil
	}

	encodedVal := c.getInner(c.words, c.kMain, i)
	flagBit := uint32(1) << uint(c.kMain-1)
	lowMask := flagBit - 1
	if encodedVal&flagBit != 0 {
		return c.overflow[encodedVal&lowMask], nil
	}
	return encodedVal & lowMask, nil
}

// K returns k_main, the effective bit width per main-stream slot.
func (c *OverflowCodec) K() int { return c.kMain }

// N returns the number of elements packed.
func (c *OverflowCodec) N() int { return c.n }

// Variant reports the variant tag actually used: "overflow" for a genuine
// two-tier pack, or the inner layout's own name ("noncross"/"cross") when
// Compress fell back to single-tier packing.
func (c *OverflowCodec) Variant() string {
	if c.fellBack {
		return c.innerVariant()
	}
	return VariantOverflow
}

// Words exposes the packed main-stream words, used by the envelope
// serialiser.
func (c *OverflowCodec) Words() []uint32 { return c.words }

// Overflow exposes the side-channel values, used by the envelope
// serialiser. Nil when Compress fell back to single-tier packing.
func (c *OverflowCodec) Overflow() []uint32 { return c.overflow }

// Threshold exposes the cutoff value T computed by Compress.
func (c *OverflowCodec) Threshold() uint32 { return c.cutoff }

// KLow exposes the payload bit width under the flag (kMain - 1).
func (c *OverflowCodec) KLow() int { return c.kLow }

// FellBack reports whether Compress degraded to single-tier packing.
func (c *OverflowCodec) FellBack() bool { return c.fellBack }

// loadOverflow restores an OverflowCodec from envelope fields, bypassing
// Compress. Used by the envelope loader.
func loadOverflow(n, kMain, kLow int, words, overflow []uint32, cutoff uint32, innerCross bool) *OverflowCodec {
	return &OverflowCodec{
		threshold:  DefaultOverflowThreshold,
		innerCross: innerCross,
		n:          n,
		kMain:      kMain,
		kLow:       kLow,
		words:      words,
		overflow:   overflow,
		cutoff:     cutoff,
		fellBack:   false,
	}
}
