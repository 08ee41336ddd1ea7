package bitpack

import "math/bits"

// wordWidth is W, the logical word width in bits. Every packed representation
// in this package is defined in terms of W-bit words, not machine bytes.
const wordWidth = 32

// bitsFor returns the minimum number of bits needed to represent v, i.e.
// floor(log2(v))+1 for v > 0, and 0 for v == 0. Callers that need a slot
// width for a non-empty array clamp the result to at least 1 themselves,
// since a zero-only array still needs one bit per slot for Get to be
// well-defined.
func bitsFor(v uint32) int {
	return bits.Len32(v)
}

// capacity returns the number of k-bit slots that fit in one W-bit word
// without crossing the boundary, i.e. floor(W/k). Used by NonCross.
func capacity(k int) int {
	return wordWidth / k
}

// mask64 returns a k-bit all-ones mask as a uint64, so it can hold the full
// 32-bit mask (k == 32) without overflow and still leave headroom for the
// straddle arithmetic in CrossCodec, which works with up to W+k bits of
// scratch width.
func mask64(k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(k)) - 1
}

// mask32 returns mask64(k) truncated to uint32; valid for k in [0, 32].
func mask32(k int) uint32 {
	return uint32(mask64(k))
}
