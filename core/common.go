package core

import (
	"fmt"
	"strings"
	"time"
)

// ReferenceField is one reference-valued attribute of an object: the JSON
// field name and the identifiers it holds. Single-valued reference fields are
// reported as a one-element Refs slice so the bundle layer can treat every
// reference field uniformly.
type ReferenceField struct {
	// Name is the JSON field name, e.g. "created_by_ref" or "object_refs"
	Name string
	// Refs holds the referenced STIX identifiers in field order
	Refs []string
}

// Object is the capability contract every STIX object implements. The bundle
// package depends only on this interface, never on the concrete object list,
// so new object types can be added without touching the reference graph.
type Object interface {
	// ID returns the object's STIX identifier
	ID() string
	// Type returns the object type token embedded in the identifier
	Type() string
	// Created returns the immutable creation timestamp
	Created() time.Time
	// Modified returns the timestamp of the current version
	Modified() time.Time
	// ReferenceFields returns every reference-valued field the object
	// exposes, in a stable order
	ReferenceFields() []ReferenceField
}

// ExternalReference links an object to an external source such as a CVE entry
// or an ATT&CK technique page.
type ExternalReference struct {
	SourceName  string            `json:"source_name"`
	Description string            `json:"description,omitempty"`
	URL         string            `json:"url,omitempty"`
	ExternalID  string            `json:"external_id,omitempty"`
	Hashes      map[string]string `json:"hashes,omitempty"`
}

// KillChainPhase names a phase within a kill chain, used by malware and
// indicator objects.
type KillChainPhase struct {
	KillChainName string `json:"kill_chain_name"`
	PhaseName     string `json:"phase_name"`
}

// GranularMarking applies a marking to selected portions of an object.
type GranularMarking struct {
	MarkingRef string   `json:"marking_ref,omitempty"`
	Selectors  []string `json:"selectors"`
	Lang       string   `json:"lang,omitempty"`
}

// CommonProperties is the property block shared by all STIX domain and
// relationship objects. Concrete object types embed it and inherit the Object
// contract accessors.
//
// Invariants: ID and CreatedAt never change after construction; ModifiedAt is
// monotonically non-decreasing and only advanced through the VersionPolicy.
type CommonProperties struct {
	ObjectType         string              `json:"type"`
	ObjectID           string              `json:"id"`
	SpecVersion        string              `json:"spec_version,omitempty"`
	CreatedAt          time.Time           `json:"created"`
	ModifiedAt         time.Time           `json:"modified"`
	CreatedByRef       string              `json:"created_by_ref,omitempty"`
	Revoked            bool                `json:"revoked,omitempty"`
	Labels             []string            `json:"labels,omitempty"`
	Confidence         *int                `json:"confidence,omitempty"`
	Lang               string              `json:"lang,omitempty"`
	ExternalReferences []ExternalReference `json:"external_references,omitempty"`
	ObjectMarkingRefs  []string            `json:"object_marking_refs,omitempty"`
	GranularMarkings   []GranularMarking   `json:"granular_markings,omitempty"`
}

// NewCommonProperties builds the common block for a fresh object of the given
// type: a new type--uuid identifier, spec_version 2.1, and created == modified
// set to the current time truncated to millisecond precision (the granularity
// STIX timestamps are serialized at).
func NewCommonProperties(objectType string, createdByRef string) CommonProperties {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return CommonProperties{
		ObjectType:   objectType,
		ObjectID:     NewID(objectType),
		SpecVersion:  SpecVersion,
		CreatedAt:    now,
		ModifiedAt:   now,
		CreatedByRef: createdByRef,
	}
}

// ID returns the object's STIX identifier.
func (c *CommonProperties) ID() string { return c.ObjectID }

// Type returns the object type token.
func (c *CommonProperties) Type() string { return c.ObjectType }

// Created returns the creation timestamp.
func (c *CommonProperties) Created() time.Time { return c.CreatedAt }

// Modified returns the timestamp of the current version.
func (c *CommonProperties) Modified() time.Time { return c.ModifiedAt }

// CommonReferenceFields returns the reference fields present in the common
// block itself. Concrete types append their own fields to this slice when
// implementing ReferenceFields.
func (c *CommonProperties) CommonReferenceFields() []ReferenceField {
	var fields []ReferenceField
	if c.CreatedByRef != "" {
		fields = append(fields, ReferenceField{Name: "created_by_ref", Refs: []string{c.CreatedByRef}})
	}
	if len(c.ObjectMarkingRefs) > 0 {
		fields = append(fields, ReferenceField{Name: "object_marking_refs", Refs: c.ObjectMarkingRefs})
	}
	return fields
}

// Validate checks the internal consistency of the common block: the ID must be
// well formed and its embedded type token must match the type field.
func (c *CommonProperties) Validate() error {
	typ, _, err := ParseID(c.ObjectID)
	if err != nil {
		return err
	}
	if typ != c.ObjectType {
		return fmt.Errorf("id type token %q does not match object type %q", typ, c.ObjectType)
	}
	if c.Confidence != nil && (*c.Confidence < 0 || *c.Confidence > 100) {
		return fmt.Errorf("confidence %d outside valid range 0-100", *c.Confidence)
	}
	return nil
}

// MarkingDefinition represents a data marking such as a TLP level. It is a
// meta object: it carries the common block minus the modified timestamp in
// STIX proper, but this library keeps the full block for uniformity.
type MarkingDefinition struct {
	CommonProperties
	DefinitionType string         `json:"definition_type"`
	Definition     map[string]any `json:"definition"`
	Name           string         `json:"name,omitempty"`
}

// NewMarkingDefinition creates a marking definition of the given kind.
func NewMarkingDefinition(definitionType string, definition map[string]any) *MarkingDefinition {
	return &MarkingDefinition{
		CommonProperties: NewCommonProperties("marking-definition", ""),
		DefinitionType:   definitionType,
		Definition:       definition,
	}
}

// TLP creates a Traffic Light Protocol marking definition for the given level
// (e.g. "red", "amber", "green", "white").
func TLP(level string) *MarkingDefinition {
	m := NewMarkingDefinition("tlp", map[string]any{"tlp": strings.ToLower(level)})
	m.Name = "TLP:" + strings.ToUpper(level)
	return m
}

// ReferenceFields implements the Object contract for MarkingDefinition.
func (m *MarkingDefinition) ReferenceFields() []ReferenceField {
	return m.CommonReferenceFields()
}
