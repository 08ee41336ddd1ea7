package bitpack

// FactoryOptions configures NewCodec. Only OverflowThreshold applies to the
// overflow variants; it is ignored for "noncross" and "cross".
type FactoryOptions struct {
	// OverflowThreshold is the rank percentile in (0, 1] used to choose the
	// overflow cutoff. Zero means "use DefaultOverflowThreshold".
	OverflowThreshold float64
}

// NewCodec returns a fresh, uncompressed Codec for the named variant.
//
// The closed set of names is "noncross", "cross", "overflow",
// "overflow-noncross", and "overflow-cross". "overflow" is an alias for
// "overflow-cross": crossing is the default inner layout for the two-tier
// variant. NewCodec returns ErrUnknownVariant for any other name.
func NewCodec(variant string, opts FactoryOptions) (Codec, error) {
	threshold := opts.OverflowThreshold
	if threshold == 0 {
		threshold = DefaultOverflowThreshold
	}

	switch variant {
	case VariantNonCross:
		return NewNonCrossCodec(), nil
	case VariantCross:
		return NewCrossCodec(), nil
	case VariantOverflow, VariantOverflowCross:
		return NewOverflowCodec(threshold, true)
	case VariantOverflowNon:
		return NewOverflowCodec(threshold, false)
	default:
		return nil, ErrUnknownVariant
	}
}
