package objects

import (
	"testing"

	"stixcore/bundle"
	"stixcore/core"
	"stixcore/vocab"
)

func TestDefaultRegistry_RoundTrip(t *testing.T) {
	author := NewIdentity("ACME Threat Intel", vocab.IdentityClassOrganization)
	malware := NewMalware("CryptoLocker", true)
	malware.CreatedByRef = author.ID()
	indicator := NewIndicator("[file:hashes.MD5 = 'd41d8cd98f00b204e9800998ecf8427e']", vocab.PatternTypeStix)
	indicator.CreatedByRef = author.ID()
	rel := NewRelationship(vocab.RelationshipIndicates, indicator.ID(), malware.ID())

	b := bundle.New()
	for _, obj := range []core.Object{author, malware, indicator, rel} {
		if err := b.Insert(obj); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	data, err := bundle.Encode(b)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := bundle.ValidateEnvelope(data); err != nil {
		t.Fatalf("ValidateEnvelope() error = %v", err)
	}

	again, err := bundle.Decode(data, DefaultRegistry())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	obj, ok := again.Get(malware.ID())
	if !ok {
		t.Fatal("decoded bundle missing malware object")
	}
	decoded, ok := obj.(*Malware)
	if !ok {
		t.Fatalf("malware decoded as %T, want *Malware", obj)
	}
	if decoded.Name != "CryptoLocker" || !decoded.IsFamily {
		t.Errorf("decoded malware = %+v", decoded)
	}

	// Reference edges survive the round-trip.
	refs := again.FindReferencesTo(malware.ID())
	if len(refs) != 1 || refs[0].ID() != rel.ID() {
		t.Errorf("FindReferencesTo(malware) = %v, want [relationship]", refs)
	}
	refs = again.FindReferencesTo(author.ID())
	if len(refs) != 2 {
		t.Errorf("FindReferencesTo(author) = %d records, want 2", len(refs))
	}
}

func TestDefaultRegistry_UnknownTypeFallsBackToGeneric(t *testing.T) {
	raw := `{
  "type": "bundle",
  "id": "bundle--4ba3e17c-6c1c-4d5e-9a30-4a63f0f2d411",
  "objects": [
    {"type": "grouping", "id": "grouping--733c5838-34d9-4fbf-949c-62aba761184c", "context": "suspicious-activity"}
  ]
}`
	b, err := bundle.Decode([]byte(raw), DefaultRegistry())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	obj, _ := b.Get("grouping--733c5838-34d9-4fbf-949c-62aba761184c")
	if _, ok := obj.(*bundle.Generic); !ok {
		t.Errorf("grouping decoded as %T, want *bundle.Generic", obj)
	}
}

func TestDefaultRegistry_MarkingDefinition(t *testing.T) {
	tlp := core.TLP("amber")
	b := bundle.New()
	if err := b.Insert(tlp); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	data, err := bundle.Encode(b)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	again, err := bundle.Decode(data, DefaultRegistry())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	obj, _ := again.Get(tlp.ID())
	decoded, ok := obj.(*core.MarkingDefinition)
	if !ok {
		t.Fatalf("marking decoded as %T, want *core.MarkingDefinition", obj)
	}
	if decoded.Name != "TLP:AMBER" {
		t.Errorf("decoded marking name = %s", decoded.Name)
	}
}
