package objects

import (
	"encoding/json"

	"stixcore/bundle"
	"stixcore/core"
)

// DefaultRegistry returns a bundle decoder registry covering every object
// type in this package. Types outside it (observables, extensions) fall
// back to bundle.Generic.
func DefaultRegistry() *bundle.Registry {
	reg := bundle.NewRegistry()
	reg.Register("identity", decodeInto(func() core.Object { return &Identity{} }))
	reg.Register("indicator", decodeInto(func() core.Object { return &Indicator{} }))
	reg.Register("malware", decodeInto(func() core.Object { return &Malware{} }))
	reg.Register("attack-pattern", decodeInto(func() core.Object { return &AttackPattern{} }))
	reg.Register("campaign", decodeInto(func() core.Object { return &Campaign{} }))
	reg.Register("threat-actor", decodeInto(func() core.Object { return &ThreatActor{} }))
	reg.Register("tool", decodeInto(func() core.Object { return &Tool{} }))
	reg.Register("vulnerability", decodeInto(func() core.Object { return &Vulnerability{} }))
	reg.Register("course-of-action", decodeInto(func() core.Object { return &CourseOfAction{} }))
	reg.Register("intrusion-set", decodeInto(func() core.Object { return &IntrusionSet{} }))
	reg.Register("report", decodeInto(func() core.Object { return &Report{} }))
	reg.Register("note", decodeInto(func() core.Object { return &Note{} }))
	reg.Register("observed-data", decodeInto(func() core.Object { return &ObservedData{} }))
	reg.Register("relationship", decodeInto(func() core.Object { return &Relationship{} }))
	reg.Register("sighting", decodeInto(func() core.Object { return &Sighting{} }))
	reg.Register("marking-definition", decodeInto(func() core.Object { return &core.MarkingDefinition{} }))
	return reg
}

// decodeInto adapts a zero-value constructor into a bundle.DecodeFunc.
func decodeInto(newObj func() core.Object) bundle.DecodeFunc {
	return func(data []byte) (core.Object, error) {
		obj := newObj()
		if err := json.Unmarshal(data, obj); err != nil {
			return nil, err
		}
		return obj, nil
	}
}
