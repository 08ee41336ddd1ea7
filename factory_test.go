package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodecKnownVariants(t *testing.T) {
	for _, variant := range []string{
		VariantNonCross, VariantCross, VariantOverflow,
		VariantOverflowNon, VariantOverflowCross,
	} {
		c, err := NewCodec(variant, FactoryOptions{})
		require.NoError(t, err, variant)
		require.NoError(t, c.Compress([]uint32{1, 2, 3, 4}))
		assert.Equal(t, 4, c.N())
	}
}

func TestNewCodecOverflowIsAliasForOverflowCross(t *testing.T) {
	c, err := NewCodec(VariantOverflow, FactoryOptions{})
	require.NoError(t, err)
	oc, ok := c.(*OverflowCodec)
	require.True(t, ok)
	assert.True(t, oc.innerCross)
}

func TestNewCodecOverflowNonUsesNonCrossInner(t *testing.T) {
	c, err := NewCodec(VariantOverflowNon, FactoryOptions{})
	require.NoError(t, err)
	oc, ok := c.(*OverflowCodec)
	require.True(t, ok)
	assert.False(t, oc.innerCross)
}

func TestNewCodecUnknownVariant(t *testing.T) {
	_, err := NewCodec("bogus", FactoryOptions{})
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestNewCodecThresholdDefaultsWhenZero(t *testing.T) {
	c, err := NewCodec(VariantOverflow, FactoryOptions{})
	require.NoError(t, err)
	oc := c.(*OverflowCodec)
	assert.Equal(t, DefaultOverflowThreshold, oc.threshold)
}

func TestNewCodecThresholdPassthrough(t *testing.T) {
	c, err := NewCodec(VariantOverflow, FactoryOptions{OverflowThreshold: 0.5})
	require.NoError(t, err)
	oc := c.(*OverflowCodec)
	assert.Equal(t, 0.5, oc.threshold)
}
