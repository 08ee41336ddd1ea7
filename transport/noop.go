package transport

// NoOpCodec passes data through unmodified. Useful as a baseline when
// measuring whether a real codec is worth its CPU cost on a given envelope.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Kind() Kind { return NoOp }
