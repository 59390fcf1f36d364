package objects

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"stixcore/core"
	"stixcore/pattern"
	"stixcore/vocab"
)

var validate = validator.New()

// Identity represents an individual, group, organization or system.
type Identity struct {
	core.CommonProperties
	Name          string              `json:"name" validate:"required,min=1,max=200"`
	Description   string              `json:"description,omitempty" validate:"max=2000"`
	IdentityClass vocab.IdentityClass `json:"identity_class,omitempty"`
	Sectors       []string            `json:"sectors,omitempty" validate:"max=50"`
	ContactInfo   string              `json:"contact_information,omitempty" validate:"max=1000"`
}

// NewIdentity creates an identity with a fresh identifier.
func NewIdentity(name string, class vocab.IdentityClass) *Identity {
	return &Identity{
		CommonProperties: core.NewCommonProperties("identity", ""),
		Name:             name,
		IdentityClass:    class,
	}
}

// ReferenceFields implements the core.Object contract.
func (i *Identity) ReferenceFields() []core.ReferenceField {
	return i.CommonReferenceFields()
}

// Validate checks the common block, struct constraints and vocabulary.
func (i *Identity) Validate() error {
	if err := i.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(i); err != nil {
		return err
	}
	if i.IdentityClass != "" && !i.IdentityClass.IsValid() {
		return fmt.Errorf("invalid identity_class: %s", i.IdentityClass)
	}
	return nil
}

// Indicator carries a detection pattern and its validity window.
type Indicator struct {
	core.CommonProperties
	Name            string                `json:"name,omitempty" validate:"max=200"`
	Description     string                `json:"description,omitempty" validate:"max=2000"`
	IndicatorTypes  []vocab.IndicatorType `json:"indicator_types,omitempty" validate:"max=20"`
	Pattern         string                `json:"pattern" validate:"required"`
	PatternType     vocab.PatternType     `json:"pattern_type" validate:"required"`
	PatternVersion  string                `json:"pattern_version,omitempty"`
	ValidFrom       time.Time             `json:"valid_from" validate:"required"`
	ValidUntil      *time.Time            `json:"valid_until,omitempty"`
	KillChainPhases []core.KillChainPhase `json:"kill_chain_phases,omitempty"`
}

// NewIndicator creates an indicator whose validity starts at its creation
// time.
func NewIndicator(patternText string, patternType vocab.PatternType) *Indicator {
	common := core.NewCommonProperties("indicator", "")
	return &Indicator{
		CommonProperties: common,
		Pattern:          patternText,
		PatternType:      patternType,
		ValidFrom:        common.CreatedAt,
	}
}

// ReferenceFields implements the core.Object contract.
func (i *Indicator) ReferenceFields() []core.ReferenceField {
	return i.CommonReferenceFields()
}

// Validate checks the common block, struct constraints, vocabulary, the
// validity window, and for stix-type patterns the pattern syntax itself.
func (i *Indicator) Validate() error {
	if err := i.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(i); err != nil {
		return err
	}
	if !i.PatternType.IsValid() {
		return fmt.Errorf("invalid pattern_type: %s", i.PatternType)
	}
	for _, it := range i.IndicatorTypes {
		if !it.IsValid() {
			return fmt.Errorf("invalid indicator_type: %s", it)
		}
	}
	if i.ValidUntil != nil && !i.ValidUntil.After(i.ValidFrom) {
		return fmt.Errorf("valid_until must be after valid_from")
	}
	if i.PatternType == vocab.PatternTypeStix {
		if err := pattern.Validate(i.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// Malware represents a malware family or instance.
type Malware struct {
	core.CommonProperties
	Name                string                `json:"name,omitempty" validate:"max=200"`
	Description         string                `json:"description,omitempty" validate:"max=2000"`
	MalwareTypes        []vocab.MalwareType   `json:"malware_types,omitempty" validate:"max=20"`
	IsFamily            bool                  `json:"is_family"`
	Aliases             []string              `json:"aliases,omitempty" validate:"max=50"`
	KillChainPhases     []core.KillChainPhase `json:"kill_chain_phases,omitempty"`
	FirstSeen           *time.Time            `json:"first_seen,omitempty"`
	LastSeen            *time.Time            `json:"last_seen,omitempty"`
	OperatingSystemRefs []string              `json:"operating_system_refs,omitempty"`
	SampleRefs          []string              `json:"sample_refs,omitempty"`
	Capabilities        []string              `json:"capabilities,omitempty"`
}

// NewMalware creates a malware object. isFamily distinguishes a family from
// a specific instance.
func NewMalware(name string, isFamily bool) *Malware {
	return &Malware{
		CommonProperties: core.NewCommonProperties("malware", ""),
		Name:             name,
		IsFamily:         isFamily,
	}
}

// ReferenceFields implements the core.Object contract.
func (m *Malware) ReferenceFields() []core.ReferenceField {
	fields := m.CommonReferenceFields()
	if len(m.OperatingSystemRefs) > 0 {
		fields = append(fields, core.ReferenceField{Name: "operating_system_refs", Refs: m.OperatingSystemRefs})
	}
	if len(m.SampleRefs) > 0 {
		fields = append(fields, core.ReferenceField{Name: "sample_refs", Refs: m.SampleRefs})
	}
	return fields
}

// Validate checks the common block, struct constraints and vocabulary.
func (m *Malware) Validate() error {
	if err := m.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(m); err != nil {
		return err
	}
	for _, mt := range m.MalwareTypes {
		if !mt.IsValid() {
			return fmt.Errorf("invalid malware_type: %s", mt)
		}
	}
	if m.FirstSeen != nil && m.LastSeen != nil && m.LastSeen.Before(*m.FirstSeen) {
		return fmt.Errorf("last_seen must not precede first_seen")
	}
	return nil
}

// AttackPattern describes a technique adversaries use.
type AttackPattern struct {
	core.CommonProperties
	Name            string                `json:"name" validate:"required,max=200"`
	Description     string                `json:"description,omitempty" validate:"max=2000"`
	Aliases         []string              `json:"aliases,omitempty" validate:"max=50"`
	KillChainPhases []core.KillChainPhase `json:"kill_chain_phases,omitempty"`
}

// NewAttackPattern creates an attack pattern with the given name.
func NewAttackPattern(name string) *AttackPattern {
	return &AttackPattern{
		CommonProperties: core.NewCommonProperties("attack-pattern", ""),
		Name:             name,
	}
}

// ReferenceFields implements the core.Object contract.
func (a *AttackPattern) ReferenceFields() []core.ReferenceField {
	return a.CommonReferenceFields()
}

// Validate checks the common block and struct constraints.
func (a *AttackPattern) Validate() error {
	if err := a.CommonProperties.Validate(); err != nil {
		return err
	}
	return validate.Struct(a)
}

// Campaign groups adversary activity over a period of time.
type Campaign struct {
	core.CommonProperties
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description,omitempty" validate:"max=2000"`
	Aliases     []string   `json:"aliases,omitempty" validate:"max=50"`
	FirstSeen   *time.Time `json:"first_seen,omitempty"`
	LastSeen    *time.Time `json:"last_seen,omitempty"`
	Objective   string     `json:"objective,omitempty" validate:"max=2000"`
}

// NewCampaign creates a campaign with the given name.
func NewCampaign(name string) *Campaign {
	return &Campaign{
		CommonProperties: core.NewCommonProperties("campaign", ""),
		Name:             name,
	}
}

// ReferenceFields implements the core.Object contract.
func (c *Campaign) ReferenceFields() []core.ReferenceField {
	return c.CommonReferenceFields()
}

// Validate checks the common block and struct constraints.
func (c *Campaign) Validate() error {
	if err := c.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.FirstSeen != nil && c.LastSeen != nil && c.LastSeen.Before(*c.FirstSeen) {
		return fmt.Errorf("last_seen must not precede first_seen")
	}
	return nil
}

// ThreatActor represents an adversary or adversary group.
type ThreatActor struct {
	core.CommonProperties
	Name             string                  `json:"name" validate:"required,max=200"`
	Description      string                  `json:"description,omitempty" validate:"max=2000"`
	ThreatActorTypes []vocab.ThreatActorType `json:"threat_actor_types,omitempty" validate:"max=20"`
	Aliases          []string                `json:"aliases,omitempty" validate:"max=50"`
	Roles            []string                `json:"roles,omitempty" validate:"max=20"`
	Goals            []string                `json:"goals,omitempty" validate:"max=20"`
}

// NewThreatActor creates a threat actor with the given name.
func NewThreatActor(name string) *ThreatActor {
	return &ThreatActor{
		CommonProperties: core.NewCommonProperties("threat-actor", ""),
		Name:             name,
	}
}

// ReferenceFields implements the core.Object contract.
func (t *ThreatActor) ReferenceFields() []core.ReferenceField {
	return t.CommonReferenceFields()
}

// Validate checks the common block, struct constraints and vocabulary.
func (t *ThreatActor) Validate() error {
	if err := t.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(t); err != nil {
		return err
	}
	for _, at := range t.ThreatActorTypes {
		if !at.IsValid() {
			return fmt.Errorf("invalid threat_actor_type: %s", at)
		}
	}
	return nil
}

// Tool represents legitimate software usable by adversaries.
type Tool struct {
	core.CommonProperties
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description,omitempty" validate:"max=2000"`
	ToolTypes   []vocab.ToolType `json:"tool_types,omitempty" validate:"max=20"`
	Aliases     []string         `json:"aliases,omitempty" validate:"max=50"`
	ToolVersion string           `json:"tool_version,omitempty" validate:"max=50"`
}

// NewTool creates a tool with the given name.
func NewTool(name string) *Tool {
	return &Tool{
		CommonProperties: core.NewCommonProperties("tool", ""),
		Name:             name,
	}
}

// ReferenceFields implements the core.Object contract.
func (t *Tool) ReferenceFields() []core.ReferenceField {
	return t.CommonReferenceFields()
}

// Validate checks the common block, struct constraints and vocabulary.
func (t *Tool) Validate() error {
	if err := t.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(t); err != nil {
		return err
	}
	for _, tt := range t.ToolTypes {
		if !tt.IsValid() {
			return fmt.Errorf("invalid tool_type: %s", tt)
		}
	}
	return nil
}

// Vulnerability represents a weakness, typically carrying a CVE external
// reference.
type Vulnerability struct {
	core.CommonProperties
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// NewVulnerability creates a vulnerability with the given name.
func NewVulnerability(name string) *Vulnerability {
	return &Vulnerability{
		CommonProperties: core.NewCommonProperties("vulnerability", ""),
		Name:             name,
	}
}

// ReferenceFields implements the core.Object contract.
func (v *Vulnerability) ReferenceFields() []core.ReferenceField {
	return v.CommonReferenceFields()
}

// Validate checks the common block and struct constraints.
func (v *Vulnerability) Validate() error {
	if err := v.CommonProperties.Validate(); err != nil {
		return err
	}
	return validate.Struct(v)
}

// CourseOfAction describes a response or mitigation.
type CourseOfAction struct {
	core.CommonProperties
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
}

// NewCourseOfAction creates a course of action with the given name.
func NewCourseOfAction(name string) *CourseOfAction {
	return &CourseOfAction{
		CommonProperties: core.NewCommonProperties("course-of-action", ""),
		Name:             name,
	}
}

// ReferenceFields implements the core.Object contract.
func (c *CourseOfAction) ReferenceFields() []core.ReferenceField {
	return c.CommonReferenceFields()
}

// Validate checks the common block and struct constraints.
func (c *CourseOfAction) Validate() error {
	if err := c.CommonProperties.Validate(); err != nil {
		return err
	}
	return validate.Struct(c)
}

// IntrusionSet groups adversary behavior believed to share a common origin.
type IntrusionSet struct {
	core.CommonProperties
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	Aliases     []string `json:"aliases,omitempty" validate:"max=50"`
	Goals       []string `json:"goals,omitempty" validate:"max=20"`
}

// NewIntrusionSet creates an intrusion set with the given name.
func NewIntrusionSet(name string) *IntrusionSet {
	return &IntrusionSet{
		CommonProperties: core.NewCommonProperties("intrusion-set", ""),
		Name:             name,
	}
}

// ReferenceFields implements the core.Object contract.
func (i *IntrusionSet) ReferenceFields() []core.ReferenceField {
	return i.CommonReferenceFields()
}

// Validate checks the common block and struct constraints.
func (i *IntrusionSet) Validate() error {
	if err := i.CommonProperties.Validate(); err != nil {
		return err
	}
	return validate.Struct(i)
}

// Report collects related objects under a narrative.
type Report struct {
	core.CommonProperties
	Name        string             `json:"name" validate:"required,max=200"`
	Description string             `json:"description,omitempty" validate:"max=2000"`
	ReportTypes []vocab.ReportType `json:"report_types,omitempty" validate:"max=20"`
	Published   *time.Time         `json:"published,omitempty"`
	ObjectRefs  []string           `json:"object_refs,omitempty"`
}

// NewReport creates a report covering the given object identifiers.
func NewReport(name string, objectRefs []string) *Report {
	return &Report{
		CommonProperties: core.NewCommonProperties("report", ""),
		Name:             name,
		ObjectRefs:       objectRefs,
	}
}

// ReferenceFields implements the core.Object contract.
func (r *Report) ReferenceFields() []core.ReferenceField {
	fields := r.CommonReferenceFields()
	if len(r.ObjectRefs) > 0 {
		fields = append(fields, core.ReferenceField{Name: "object_refs", Refs: r.ObjectRefs})
	}
	return fields
}

// Validate checks the common block, struct constraints and vocabulary.
func (r *Report) Validate() error {
	if err := r.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(r); err != nil {
		return err
	}
	for _, rt := range r.ReportTypes {
		if !rt.IsValid() {
			return fmt.Errorf("invalid report_type: %s", rt)
		}
	}
	return nil
}

// Note adds analyst commentary to existing objects.
type Note struct {
	core.CommonProperties
	Abstract   string   `json:"abstract,omitempty" validate:"max=500"`
	Content    string   `json:"content" validate:"required"`
	Authors    []string `json:"authors,omitempty" validate:"max=20"`
	ObjectRefs []string `json:"object_refs" validate:"required,min=1"`
}

// NewNote creates a note about the given object identifiers.
func NewNote(content string, objectRefs []string) *Note {
	return &Note{
		CommonProperties: core.NewCommonProperties("note", ""),
		Content:          content,
		ObjectRefs:       objectRefs,
	}
}

// ReferenceFields implements the core.Object contract.
func (n *Note) ReferenceFields() []core.ReferenceField {
	fields := n.CommonReferenceFields()
	if len(n.ObjectRefs) > 0 {
		fields = append(fields, core.ReferenceField{Name: "object_refs", Refs: n.ObjectRefs})
	}
	return fields
}

// Validate checks the common block and struct constraints.
func (n *Note) Validate() error {
	if err := n.CommonProperties.Validate(); err != nil {
		return err
	}
	return validate.Struct(n)
}

// ObservedData conveys raw observations made over a time window.
type ObservedData struct {
	core.CommonProperties
	FirstObserved  time.Time `json:"first_observed" validate:"required"`
	LastObserved   time.Time `json:"last_observed" validate:"required"`
	NumberObserved int       `json:"number_observed" validate:"required,min=1,max=999999999"`
	ObjectRefs     []string  `json:"object_refs" validate:"required,min=1"`
}

// NewObservedData creates an observed-data record for the given window.
func NewObservedData(first, last time.Time, count int, objectRefs []string) *ObservedData {
	return &ObservedData{
		CommonProperties: core.NewCommonProperties("observed-data", ""),
		FirstObserved:    first,
		LastObserved:     last,
		NumberObserved:   count,
		ObjectRefs:       objectRefs,
	}
}

// ReferenceFields implements the core.Object contract.
func (o *ObservedData) ReferenceFields() []core.ReferenceField {
	fields := o.CommonReferenceFields()
	if len(o.ObjectRefs) > 0 {
		fields = append(fields, core.ReferenceField{Name: "object_refs", Refs: o.ObjectRefs})
	}
	return fields
}

// Validate checks the common block, struct constraints and the observation
// window.
func (o *ObservedData) Validate() error {
	if err := o.CommonProperties.Validate(); err != nil {
		return err
	}
	if err := validate.Struct(o); err != nil {
		return err
	}
	if o.LastObserved.Before(o.FirstObserved) {
		return fmt.Errorf("last_observed must not precede first_observed")
	}
	return nil
}
