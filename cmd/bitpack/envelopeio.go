package main

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"github.com/kjhall/bitpack"
	"github.com/kjhall/bitpack/transport"
)

// transportEnvelope is the outer wrapper written when --transport names a
// codec other than "none": the payload is the transport-compressed bytes of
// the plain envelope JSON, base64-encoded so the whole thing stays valid
// JSON text.
type transportEnvelope struct {
	Transport string `json:"transport"`
	Payload   string `json:"payload"`
}

func readValues(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var values []int64
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, bitpack.ErrEnvelope
	}
	return values, nil
}

func writeValues(path string, values []uint32) error {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// readEnvelope loads an envelope from path, transparently unwrapping the
// transport metadata record if present.
func readEnvelope(path string) (*bitpack.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err == nil {
		if _, ok := probe["transport"]; ok {
			var wrapper transportEnvelope
			if err := json.Unmarshal(data, &wrapper); err != nil {
				return nil, bitpack.ErrEnvelope
			}
			codec, err := transport.New(transport.Kind(wrapper.Transport))
			if err != nil {
				return nil, err
			}
			raw, err := base64.StdEncoding.DecodeString(wrapper.Payload)
			if err != nil {
				return nil, bitpack.ErrEnvelope
			}
			data, err = codec.Decompress(raw)
			if err != nil {
				return nil, err
			}
		}
	}

	var env bitpack.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, bitpack.ErrEnvelope
	}
	return &env, nil
}

// writeEnvelope serializes env to path, wrapping it in the transport
// metadata record unless kind is "" or transport.NoOp.
func writeEnvelope(path string, env *bitpack.Envelope, kind transport.Kind) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}

	if kind == "" || kind == transport.NoOp {
		return os.WriteFile(path, data, 0o644)
	}

	codec, err := transport.New(kind)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(data)
	if err != nil {
		return err
	}
	wrapper := transportEnvelope{
		Transport: string(kind),
		Payload:   base64.StdEncoding.EncodeToString(compressed),
	}
	out, err := json.Marshal(wrapper)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
