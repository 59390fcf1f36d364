package vocab

// Well-known object type names. Domain object types carry timestamps and
// versioning metadata; observable types are the object prefixes allowed in
// pattern expressions.

// DomainObjectTypes returns the type names of the domain objects this
// library models.
func DomainObjectTypes() []string {
	return []string{
		"attack-pattern",
		"campaign",
		"course-of-action",
		"identity",
		"indicator",
		"intrusion-set",
		"malware",
		"marking-definition",
		"note",
		"observed-data",
		"report",
		"threat-actor",
		"tool",
		"vulnerability",
	}
}

// RelationshipObjectTypes returns the type names of relationship objects.
func RelationshipObjectTypes() []string {
	return []string{
		"relationship",
		"sighting",
	}
}

// ObservableTypes returns the cyber-observable type names usable as the
// object prefix of a pattern comparison (file:name, ipv4-addr:value, ...).
func ObservableTypes() []string {
	return []string{
		"artifact",
		"autonomous-system",
		"directory",
		"domain-name",
		"email-addr",
		"email-message",
		"file",
		"ipv4-addr",
		"ipv6-addr",
		"mac-addr",
		"mutex",
		"network-traffic",
		"process",
		"software",
		"url",
		"user-account",
		"windows-registry-key",
		"x509-certificate",
	}
}

// AllObjectTypes returns every type name known to this library, domain,
// relationship and observable types combined.
func AllObjectTypes() []string {
	types := DomainObjectTypes()
	types = append(types, RelationshipObjectTypes()...)
	types = append(types, ObservableTypes()...)
	return types
}
