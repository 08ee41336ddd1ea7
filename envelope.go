package bitpack

import "encoding/json"

// Envelope is the wire format produced by Save and consumed by Load. Field
// presence depends on the variant: "threshold", "k_low", "overflow", and
// "inner" are only meaningful (and only populated) for "overflow".
type Envelope struct {
	Variant string   `json:"variant"`
	N       int      `json:"n"`
	K       int      `json:"k"`
	Words   []uint32 `json:"words"`

	Threshold *uint32 `json:"threshold,omitempty"`
	KLow      *int    `json:"k_low,omitempty"`
	Overflow  []uint32 `json:"overflow,omitempty"`
	Inner     string   `json:"inner,omitempty"`
}

// Save serialises a compressed Codec into its wire envelope. The Codec must
// have had Compress (or Load) called on it.
func Save(c Codec) (*Envelope, error) {
	env := &Envelope{
		Variant: c.Variant(),
		N:       c.N(),
		K:       c.K(),
	}

	switch v := c.(type) {
	case *NonCrossCodec:
		env.Words = v.Words()
	case *CrossCodec:
		env.Words = v.Words()
	case *OverflowCodec:
		env.Words = v.Words()
		if !v.FellBack() {
			threshold := v.Threshold()
			kLow := v.KLow()
			env.Threshold = &threshold
			env.KLow = &kLow
			env.Overflow = v.Overflow()
			if env.Overflow == nil {
				env.Overflow = []uint32{}
			}
			if v.innerCross {
				env.Inner = VariantCross
			} else {
				env.Inner = VariantNonCross
			}
		}
	default:
		return nil, ErrUnknownVariant
	}
	if env.Words == nil {
		env.Words = []uint32{}
	}
	return env, nil
}

// Marshal serialises a compressed Codec directly to JSON bytes.
func Marshal(c Codec) ([]byte, error) {
	env, err := Save(c)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

// Load reconstructs a Codec from an envelope, validating structural
// consistency: required fields for the declared variant are present, the
// words slice length agrees with n and k, and k == 0 only when n == 0. The
// overflow slice's length is not checked.
func Load(env *Envelope) (Codec, error) {
	if env == nil {
		return nil, ErrEnvelope
	}
	if env.N < 0 || env.K < 0 {
		return nil, ErrEnvelope
	}
	if env.K == 0 && env.N > 0 {
		return nil, ErrEnvelope
	}

	switch env.Variant {
	case VariantNonCross:
		if err := checkWordCount(env.N, env.K, len(env.Words), nonCrossWordCount); err != nil {
			return nil, err
		}
		return loadNonCross(env.N, env.K, env.Words), nil

	case VariantCross:
		if err := checkWordCount(env.N, env.K, len(env.Words), crossWordCount); err != nil {
			return nil, err
		}
		return loadCross(env.N, env.K, env.Words), nil

	case VariantOverflow:
		if env.Threshold == nil || env.KLow == nil {
			return nil, ErrEnvelope
		}
		innerCross, err := innerCrossFromName(env.Inner)
		if err != nil {
			return nil, err
		}
		wc := nonCrossWordCount
		if innerCross {
			wc = crossWordCount
		}
		if err := checkWordCount(env.N, env.K, len(env.Words), wc); err != nil {
			return nil, err
		}
		overflow := env.Overflow
		if overflow == nil {
			overflow = []uint32{}
		}
		return loadOverflow(env.N, env.K, *env.KLow, env.Words, overflow, *env.Threshold, innerCross), nil

	default:
		return nil, ErrUnknownVariant
	}
}

// Unmarshal decodes JSON bytes into a reconstructed Codec.
func Unmarshal(data []byte) (Codec, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, ErrEnvelope
	}
	return Load(&env)
}

func innerCrossFromName(name string) (bool, error) {
	switch name {
	case VariantCross:
		return true, nil
	case VariantNonCross:
		return false, nil
	default:
		return false, ErrEnvelope
	}
}

func checkWordCount(n, k, gotWords int, wordCount func(n, k int) int) error {
	want := wordCount(n, k)
	if gotWords != want {
		return ErrEnvelope
	}
	return nil
}
