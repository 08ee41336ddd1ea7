package transport

// ZstdCodec trades compression speed for ratio; it is the best choice for
// envelopes headed over a slow link or into cold storage, where the
// transmission time saved outweighs the extra CPU time (see TransmissionMetrics
// in the parent package).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (ZstdCodec) Kind() Kind { return Zstd }
