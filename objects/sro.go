package objects

import (
	"fmt"
	"time"

	"stixcore/core"
	"stixcore/vocab"
)

// Relationship links a source object to a target object with a typed edge.
type Relationship struct {
	core.CommonProperties
	RelationshipType vocab.RelationshipType `json:"relationship_type" validate:"required"`
	Description      string                 `json:"description,omitempty" validate:"max=2000"`
	SourceRef        string                 `json:"source_ref" validate:"required"`
	TargetRef        string                 `json:"target_ref" validate:"required"`
	StartTime        *time.Time             `json:"start_time,omitempty"`
	StopTime         *time.Time             `json:"stop_time,omitempty"`
}

// NewRelationship creates a typed edge from sourceRef to targetRef.
func NewRelationship(relType vocab.RelationshipType, sourceRef, targetRef string) *Relationship {
	return &Relationship{
		CommonProperties: core.NewCommonProperties("relationship", ""),
		RelationshipType: relType,
		SourceRef:        sourceRef,
		TargetRef:        targetRef,
	}
}

// ReferenceFields implements the core.Object contract.
func (r *Relationship) ReferenceFields() []core.ReferenceField {
	fields := r.CommonReferenceFields()
	fields = append(fields,
		core.ReferenceField{Name: "source_ref", Refs: []string{r.SourceRef}},
		core.ReferenceField{Name: "target_ref", Refs: []string{r.TargetRef}},
	)
	return fields
}

// Validate checks the common block, struct constraints, vocabulary and that
// both endpoints are well-formed identifiers.
func (r *Relationship) Validate() error {
	if err := r.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !r.RelationshipType.IsValid() {
		return fmt.Errorf("invalid relationship_type: %s", r.RelationshipType)
	}
	if _, _, err := core.ParseID(r.SourceRef); err != nil {
		return fmt.Errorf("source_ref: %w", err)
	}
	if _, _, err := core.ParseID(r.TargetRef); err != nil {
		return fmt.Errorf("target_ref: %w", err)
	}
	if r.StartTime != nil && r.StopTime != nil && r.StopTime.Before(*r.StartTime) {
		return fmt.Errorf("stop_time must not precede start_time")
	}
	return nil
}

// Sighting records that an object was observed, optionally where and how
// often.
type Sighting struct {
	core.CommonProperties
	Count            int        `json:"count,omitempty" validate:"min=0,max=999999999"`
	SightingOfRef    string     `json:"sighting_of_ref" validate:"required"`
	WhereSightedRefs []string   `json:"where_sighted_refs,omitempty"`
	ObservedDataRefs []string   `json:"observed_data_refs,omitempty"`
	FirstSeen        *time.Time `json:"first_seen,omitempty"`
	LastSeen         *time.Time `json:"last_seen,omitempty"`
}

// NewSighting creates a sighting of the given object.
func NewSighting(sightingOfRef string) *Sighting {
	return &Sighting{
		CommonProperties: core.NewCommonProperties("sighting", ""),
		SightingOfRef:    sightingOfRef,
	}
}

// ReferenceFields implements the core.Object contract.
func (s *Sighting) ReferenceFields() []core.ReferenceField {
	fields := s.CommonReferenceFields()
	fields = append(fields, core.ReferenceField{Name: "sighting_of_ref", Refs: []string{s.SightingOfRef}})
	if len(s.WhereSightedRefs) > 0 {
		fields = append(fields, core.ReferenceField{Name: "where_sighted_refs", Refs: s.WhereSightedRefs})
	}
	if len(s.ObservedDataRefs) > 0 {
		fields = append(fields, core.ReferenceField{Name: "observed_data_refs", Refs: s.ObservedDataRefs})
	}
	return fields
}

// Validate checks the common block, struct constraints and that the sighted
// reference is well formed. where_sighted_refs must point at identities or
// locations.
func (s *Sighting) Validate() error {
	if err := s.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(s); err != nil {
		return err
	}
	if _, _, err := core.ParseID(s.SightingOfRef); err != nil {
		return fmt.Errorf("sighting_of_ref: %w", err)
	}
	for _, ref := range s.WhereSightedRefs {
		typ, _, err := core.ParseID(ref)
		if err != nil {
			return fmt.Errorf("where_sighted_refs: %w", err)
		}
		if typ != "identity" && typ != "location" {
			return &core.InvalidReferenceTypeError{ID: ref, Expected: "identity", Actual: typ}
		}
	}
	for _, ref := range s.ObservedDataRefs {
		if err := core.CheckRefForType(ref, "observed-data"); err != nil {
			return err
		}
	}
	return nil
}
