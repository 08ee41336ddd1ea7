package bitpack

import "errors"

// ErrInvalidValue is returned by ValidateValues for a value outside the
// representable domain (negative, or wider than 32 bits), and by
// NewOverflowCodec for a threshold outside (0, 1].
var ErrInvalidValue = errors.New("bitpack: value out of range")

// ErrIndexRange is returned by Get when the requested index is outside
// [0, n).
var ErrIndexRange = errors.New("bitpack: index out of range")

// ErrNotCompressed names the state of a codec that has never had Compress
// (or Load) called on it. The codecs in this package do not return it: such
// a codec has N() == 0, so Get returns ErrIndexRange and Decompress returns
// an empty slice.
var ErrNotCompressed = errors.New("bitpack: compress has not been called")

// ErrUnknownVariant is returned by the factory when asked for a variant name
// outside the closed set it supports.
var ErrUnknownVariant = errors.New("bitpack: unknown variant")

// ErrEnvelope is returned when an envelope is structurally invalid: a
// required field is missing for its declared variant, the words length is
// inconsistent with n and k, or k == 0 while n > 0. The length of the
// overflow list is not checked.
var ErrEnvelope = errors.New("bitpack: invalid envelope")

// ErrUsage is returned by CLI-facing helpers for malformed invocations: a
// missing required flag or an argument that isn't itself a core data error.
var ErrUsage = errors.New("bitpack: usage error")

// Codec is the capability set shared by all three packing variants:
// compress, decompress, random-access get, and the two derived parameters
// that describe the packed state.
type Codec interface {
	// Compress packs values into this codec's internal state, replacing
	// any state from a previous call. Every uint32 is in the value domain,
	// so the codecs in this package always return nil; range checks on
	// wider input belong to ValidateValues.
	Compress(values []uint32) error

	// Decompress reconstructs the full array from the current state.
	// It does not mutate the codec.
	Decompress() []uint32

	// Get returns the value at index i in O(1) time without decoding any
	// other element. It returns ErrIndexRange if i is outside [0, N());
	// before Compress, N() is 0, so every index gives ErrIndexRange.
	Get(i int) (uint32, error)

	// K returns the effective bit width per slot (k_main for Overflow).
	K() int

	// N returns the number of elements packed.
	N() int

	// Variant identifies which of the three strategies this instance
	// implements — the value a correct envelope writer places in the
	// "variant" field.
	Variant() string
}

// Variant names, the closed set the factory accepts.
const (
	VariantNonCross      = "noncross"
	VariantCross         = "cross"
	VariantOverflow      = "overflow"
	VariantOverflowCross = "overflow-cross"
	VariantOverflowNon   = "overflow-noncross"
)

// ValidateValues checks that every element fits the 32-bit non-negative
// domain. uint32 inputs are non-negative by construction; this guards the
// width bound explicitly so a caller surfacing signed input (e.g. the CLI's
// JSON decoder, which reads into int64 first) gets a typed ErrInvalidValue
// instead of a silent truncation.
func ValidateValues(values []int64) ([]uint32, error) {
	out := make([]uint32, len(values))
	for i, v := range values {
		if v < 0 || v > 0xFFFFFFFF {
			return nil, ErrInvalidValue
		}
		out[i] = uint32(v)
	}
	return out, nil
}
