package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjhall/bitpack/transport"
)

func TestRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, to build up redundancy for the compressor to chew on")

	for _, kind := range []transport.Kind{transport.NoOp, transport.S2, transport.LZ4, transport.Zstd} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := transport.New(kind)
			require.NoError(t, err)
			assert.Equal(t, kind, c.Kind())

			compressed, err := c.Compress(data)
			require.NoError(t, err)

			restored, err := c.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, restored)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	for _, kind := range []transport.Kind{transport.NoOp, transport.S2, transport.LZ4, transport.Zstd} {
		c, err := transport.New(kind)
		require.NoError(t, err)

		compressed, err := c.Compress(nil)
		require.NoError(t, err)

		restored, err := c.Decompress(compressed)
		require.NoError(t, err)
		assert.Empty(t, restored)
	}
}

func TestUnknownKind(t *testing.T) {
	_, err := transport.New("bogus")
	assert.Error(t, err)
}

func TestEmptyKindIsNoOp(t *testing.T) {
	c, err := transport.New("")
	require.NoError(t, err)
	assert.Equal(t, transport.NoOp, c.Kind())
}

func TestStatsRatio(t *testing.T) {
	s := transport.Stats{OriginalSize: 0, CompressedSize: 10}
	assert.Zero(t, s.Ratio())

	s = transport.Stats{OriginalSize: 100, CompressedSize: 40}
	assert.InDelta(t, 0.4, s.Ratio(), 1e-9)
}
