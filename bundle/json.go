package bundle

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"stixcore/core"
)

// DecodeFunc turns the raw JSON of a single object into a typed record.
type DecodeFunc func(data []byte) (core.Object, error)

// Registry maps object type names to their decoders. Types without a
// decoder fall back to Generic unless Strict is set.
type Registry struct {
	decoders map[string]DecodeFunc

	// Strict rejects object types with no registered decoder instead of
	// wrapping them in Generic.
	Strict bool
}

// NewRegistry creates an empty decoder registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// Register installs fn as the decoder for objectType, replacing any
// previous decoder for that type.
func (r *Registry) Register(objectType string, fn DecodeFunc) {
	r.decoders[objectType] = fn
}

// Decode decodes one object's raw JSON using the registered decoder for its
// type, or Generic when none is registered.
func (r *Registry) Decode(data []byte) (core.Object, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("failed to read object type: %w", err)
	}
	if header.Type == "" {
		return nil, fmt.Errorf("object missing type field")
	}

	if r != nil {
		if fn, ok := r.decoders[header.Type]; ok {
			return fn(data)
		}
		if r.Strict {
			return nil, &UnknownTypeError{Type: header.Type}
		}
	}
	return DecodeGeneric(data)
}

// envelope is the wire shape of a bundle. Objects stay raw so decoding is
// per-object and order is preserved exactly.
type envelope struct {
	Type    string            `json:"type"`
	ID      string            `json:"id"`
	Objects []json.RawMessage `json:"objects"`
}

// Encode serializes the bundle to its JSON wire form, objects in insertion
// order.
func Encode(b *Bundle) ([]byte, error) {
	env := envelope{
		Type:    "bundle",
		ID:      b.id,
		Objects: make([]json.RawMessage, 0, len(b.objects)),
	}
	for _, obj := range b.objects {
		raw, err := json.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal object %s: %w", obj.ID(), err)
		}
		env.Objects = append(env.Objects, raw)
	}
	return json.Marshal(env)
}

// Decode parses a bundle from its JSON wire form. Each object is decoded
// through reg (nil means Generic for everything) and inserted in wire
// order, so Objects() round-trips the original ordering.
func Decode(data []byte, reg *Registry) (*Bundle, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
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

// Generic is the fallback record for object types with no registered
// decoder. It keeps the original bytes so unknown properties survive a
// round-trip, and derives reference fields from property naming: any key
// ending in _ref holds one identifier, any key ending in _refs holds a
// list.
type Generic struct {
	raw    json.RawMessage
	fields map[string]interface{}
}

// DecodeGeneric parses a single object into its Generic form.
func DecodeGeneric(data []byte) (core.Object, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal object: %w", err)
	}
	if _, ok := fields["type"].(string); !ok {
		return nil, fmt.Errorf("object missing type field")
	}
	if _, ok := fields["id"].(string); !ok {
		return nil, fmt.Errorf("object missing id field")
	}
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	return &Generic{raw: raw, fields: fields}, nil
}

// ID returns the object's identifier.
func (g *Generic) ID() string {
	id, _ := g.fields["id"].(string)
	return id
}

// Type returns the object's type name.
func (g *Generic) Type() string {
	typ, _ := g.fields["type"].(string)
	return typ
}

// Created returns the created timestamp, or the zero time when absent or
// unparseable.
func (g *Generic) Created() time.Time {
	return g.timestamp("created")
}

// Modified returns the modified timestamp, or the zero time when absent or
// unparseable.
func (g *Generic) Modified() time.Time {
	return g.timestamp("modified")
}

func (g *Generic) timestamp(key string) time.Time {
	s, ok := g.fields[key].(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Get returns the raw decoded value of a property.
func (g *Generic) Get(key string) (interface{}, bool) {
	v, ok := g.fields[key]
	return v, ok
}

// ReferenceFields scans the object's properties for the *_ref and *_refs
// naming convention and returns whatever identifiers they hold. Fields come
// back sorted by name so the order is stable across calls, as the Object
// contract requires.
func (g *Generic) ReferenceFields() []core.ReferenceField {
	keys := make([]string, 0, len(g.fields))
	for key := range g.fields {
		if strings.HasSuffix(key, "_ref") || strings.HasSuffix(key, "_refs") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var out []core.ReferenceField
	for _, key := range keys {
		value := g.fields[key]
		switch {
		case strings.HasSuffix(key, "_ref"):
			if id, ok := value.(string); ok && id != "" {
				out = append(out, core.ReferenceField{Name: key, Refs: []string{id}})
			}
		case strings.HasSuffix(key, "_refs"):
			list, ok := value.([]interface{})
			if !ok {
				continue
			}
			var refs []string
			for _, item := range list {
				if id, ok := item.(string); ok && id != "" {
					refs = append(refs, id)
				}
			}
			if len(refs) > 0 {
				out = append(out, core.ReferenceField{Name: key, Refs: refs})
			}
		}
	}
	return out
}

// MarshalJSON emits the original bytes so properties this library does not
// model survive unchanged.
func (g *Generic) MarshalJSON() ([]byte, error) {
	return g.raw, nil
}
