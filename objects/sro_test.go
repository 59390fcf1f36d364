package objects

import (
	"errors"
	"testing"

	"stixcore/core"
	"stixcore/vocab"
)

func TestNewRelationship(t *testing.T) {
	indicator := core.NewID("indicator")
	malware := core.NewID("malware")

	rel := NewRelationship(vocab.RelationshipIndicates, indicator, malware)
	if rel.Type() != "relationship" {
		t.Errorf("Type() = %s, want relationship", rel.Type())
	}
	if err := rel.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	names := map[string][]string{}
	for _, f := range rel.ReferenceFields() {
		names[f.Name] = f.Refs
	}
	if len(names["source_ref"]) != 1 || names["source_ref"][0] != indicator {
		t.Errorf("source_ref = %v, want [%s]", names["source_ref"], indicator)
	}
	if len(names["target_ref"]) != 1 || names["target_ref"][0] != malware {
		t.Errorf("target_ref = %v, want [%s]", names["target_ref"], malware)
	}
}

func TestRelationship_ValidateRejectsBadRefs(t *testing.T) {
	rel := NewRelationship(vocab.RelationshipUses, "not-an-id", core.NewID("tool"))
	err := rel.Validate()
	if err == nil {
		t.Fatal("Validate() should reject malformed source_ref")
	}
	var malformed *core.MalformedIdentifierError
	if !errors.As(err, &malformed) {
		t.Errorf("Validate() error = %T, want *MalformedIdentifierError", err)
	}
}

func TestRelationship_ValidateRejectsBadType(t *testing.T) {
	rel := NewRelationship(vocab.RelationshipType("points-at"),
		core.NewID("indicator"), core.NewID("malware"))
	if err := rel.Validate(); err == nil {
		t.Error("Validate() should reject unknown relationship_type")
	}
}

func TestNewSighting(t *testing.T) {
	s := NewSighting(core.NewID("indicator"))
	s.Count = 5
	s.WhereSightedRefs = []string{core.NewID("identity")}
	s.ObservedDataRefs = []string{core.NewID("observed-data")}

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	names := map[string]bool{}
	for _, f := range s.ReferenceFields() {
		names[f.Name] = true
	}
	for _, want := range []string{"sighting_of_ref", "where_sighted_refs", "observed_data_refs"} {
		if !names[want] {
			t.Errorf("ReferenceFields() missing %s", want)
		}
	}
}

func TestSighting_ValidateRejectsWrongRefTypes(t *testing.T) {
	s := NewSighting(core.NewID("indicator"))
	s.WhereSightedRefs = []string{core.NewID("malware")}

	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() should reject non-identity where_sighted_ref")
	}
	var refErr *core.InvalidReferenceTypeError
	if !errors.As(err, &refErr) {
		t.Fatalf("Validate() error = %T, want *InvalidReferenceTypeError", err)
	}

	s.WhereSightedRefs = nil
	s.ObservedDataRefs = []string{core.NewID("indicator")}
	if err := s.Validate(); err == nil {
		t.Error("Validate() should reject non-observed-data observed_data_ref")
	}
}
