package bundle

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"stixcore/core"
)

// msgpackEnvelope is the compact transport form of a bundle. Each object
// travels as its canonical JSON bytes so the typed decoders and the
// unknown-property guarantees of the JSON codec apply unchanged.
type msgpackEnvelope struct {
	Type    string   `msgpack:"type"`
	ID      string   `msgpack:"id"`
	Objects [][]byte `msgpack:"objects"`
}

// EncodeMsgpack serializes the bundle for compact transport or storage.
func EncodeMsgpack(b *Bundle) ([]byte, error) {
	env := msgpackEnvelope{
		Type:    "bundle",
		ID:      b.id,
		Objects: make([][]byte, 0, len(b.objects)),
	}
	for _, obj := range b.objects {
		raw, err := json.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal object %s: %w", obj.ID(), err)
		}
		env.Objects = append(env.Objects, raw)
	}
	data, err := msgpack.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bundle: %w", err)
	}
	return data, nil
}

// DecodeMsgpack parses a bundle produced by EncodeMsgpack, decoding each
// object through reg in wire order.
func DecodeMsgpack(data []byte, reg *Registry) (*Bundle, error) {
	var env msgpackEnvelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bundle: %w", err)
	}
	if env.Type != "bundle" {
		return nil, fmt.Errorf("expected bundle, got type %q", env.Type)
	}
	if _, _, err := core.ParseID(env.ID); err != nil {
		return nil, fmt.Errorf("invalid bundle id: %w", err)
	}

	b := NewWithID(env.ID)
	for i, raw := range env.Objects {
		obj, err := reg.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if err := b.Insert(obj); err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
	}
	return b, nil
}
