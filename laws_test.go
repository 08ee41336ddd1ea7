package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCrossOptimalityVsNonCross pins spec.md §8's "Cross optimality" law:
// for the same (n, k), Cross never uses more words than NonCross, and the
// two are equal exactly when k divides the word width.
func TestCrossOptimalityVsNonCross(t *testing.T) {
	const n = 50
	for k := 1; k <= 32; k++ {
		values := make([]uint32, n)
		maxV := uint32(1)<<uint(k) - 1
		for i := range values {
			values[i] = maxV
		}
		values[0] = 0 // keep the array non-uniform; bitsFor(maxV) still == k

		nonCross := NewNonCrossCodec()
		require.NoError(t, nonCross.Compress(values))
		cross := NewCrossCodec()
		require.NoError(t, cross.Compress(values))

		require.Equal(t, k, nonCross.K(), "k=%d", k)
		require.Equal(t, k, cross.K(), "k=%d", k)

		assert.LessOrEqual(t, len(cross.Words()), len(nonCross.Words()), "k=%d", k)
		if wordWidth%k == 0 {
			assert.Equal(t, len(nonCross.Words()), len(cross.Words()), "k=%d divides W, expected equality", k)
		} else {
			assert.Less(t, len(cross.Words()), len(nonCross.Words()), "k=%d does not divide W, expected strict improvement", k)
		}

		assert.Equal(t, values, nonCross.Decompress())
		assert.Equal(t, values, cross.Decompress())
	}
}

// TestSizeMonotonicity pins spec.md §8's "size monotonicity" law: at fixed
// n, increasing max(X) never decreases words.length for either layout.
func TestSizeMonotonicity(t *testing.T) {
	const n = 40
	maxima := []uint32{0, 1, 3, 7, 15, 255, 4095, 65535, 1 << 20, 1<<31 - 1, 0xFFFFFFFF}

	var lastNonCross, lastCross int
	for i, maxV := range maxima {
		values := make([]uint32, n)
		values[n-1] = maxV

		nonCross := NewNonCrossCodec()
		require.NoError(t, nonCross.Compress(values))
		cross := NewCrossCodec()
		require.NoError(t, cross.Compress(values))

		gotNonCross := len(nonCross.Words())
		gotCross := len(cross.Words())
		if i > 0 {
			assert.GreaterOrEqual(t, gotNonCross, lastNonCross, "max=%d: NonCross words shrank", maxV)
			assert.GreaterOrEqual(t, gotCross, lastCross, "max=%d: Cross words shrank", maxV)
		}
		lastNonCross, lastCross = gotNonCross, gotCross
	}
}
