// Package vocab holds the open vocabularies used by domain objects. Each
// vocabulary is a typed string so misspelled values fail IsValid checks
// instead of silently round-tripping through JSON.
package vocab

// IdentityClass describes what kind of entity an identity represents
type IdentityClass string

const (
	IdentityClassIndividual   IdentityClass = "individual"
	IdentityClassGroup        IdentityClass = "group"
	IdentityClassSystem       IdentityClass = "system"
	IdentityClassOrganization IdentityClass = "organization"
	IdentityClassClass        IdentityClass = "class"
	IdentityClassUnspecified  IdentityClass = "unspecified"
)

// IsValid checks if the identity class is a known vocabulary value
func (c IdentityClass) IsValid() bool {
	switch c {
	case IdentityClassIndividual, IdentityClassGroup, IdentityClassSystem,
		IdentityClassOrganization, IdentityClassClass, IdentityClassUnspecified:
		return true
	}
	return false
}

// PatternType identifies the language an indicator pattern is written in
type PatternType string

const (
	PatternTypeStix     PatternType = "stix"
	PatternTypePcre     PatternType = "pcre"
	PatternTypeSnort    PatternType = "snort"
	PatternTypeSuricata PatternType = "suricata"
	PatternTypeYara     PatternType = "yara"
)

// IsValid checks if the pattern type is a known vocabulary value
func (p PatternType) IsValid() bool {
	switch p {
	case PatternTypeStix, PatternTypePcre, PatternTypeSnort,
		PatternTypeSuricata, PatternTypeYara:
		return true
	}
	return false
}

// HashAlgorithm names a hash function used in hashes maps
type HashAlgorithm string

const (
	HashMD5    HashAlgorithm = "MD5"
	HashSHA1   HashAlgorithm = "SHA-1"
	HashSHA256 HashAlgorithm = "SHA-256"
	HashSHA512 HashAlgorithm = "SHA-512"
)

// IsValid checks if the hash algorithm is a known vocabulary value
func (h HashAlgorithm) IsValid() bool {
	switch h {
	case HashMD5, HashSHA1, HashSHA256, HashSHA512:
		return true
	}
	return false
}

// RelationshipType labels the edge between a source and a target object
type RelationshipType string

const (
	RelationshipTargets      RelationshipType = "targets"
	RelationshipUses         RelationshipType = "uses"
	RelationshipLocatedAt    RelationshipType = "located-at"
	RelationshipAttributedTo RelationshipType = "attributed-to"
	RelationshipIndicates    RelationshipType = "indicates"
	RelationshipVariantOf    RelationshipType = "variant-of"
	RelationshipMitigates    RelationshipType = "mitigates"
	RelationshipDerivedFrom  RelationshipType = "derived-from"
	RelationshipDuplicateOf  RelationshipType = "duplicate-of"
	RelationshipRelatedTo    RelationshipType = "related-to"
)

// IsValid checks if the relationship type is a known vocabulary value
func (r RelationshipType) IsValid() bool {
	switch r {
	case RelationshipTargets, RelationshipUses, RelationshipLocatedAt,
		RelationshipAttributedTo, RelationshipIndicates, RelationshipVariantOf,
		RelationshipMitigates, RelationshipDerivedFrom, RelationshipDuplicateOf,
		RelationshipRelatedTo:
		return true
	}
	return false
}

// IndicatorType characterizes what an indicator detects
type IndicatorType string

const (
	IndicatorAnomalousActivity IndicatorType = "anomalous-activity"
	IndicatorAnonymization     IndicatorType = "anonymization"
	IndicatorBenign            IndicatorType = "benign"
	IndicatorCompromised       IndicatorType = "compromised"
	IndicatorMaliciousActivity IndicatorType = "malicious-activity"
	IndicatorAttribution       IndicatorType = "attribution"
	IndicatorUnknown           IndicatorType = "unknown"
)

// IsValid checks if the indicator type is a known vocabulary value
func (i IndicatorType) IsValid() bool {
	switch i {
	case IndicatorAnomalousActivity, IndicatorAnonymization, IndicatorBenign,
		IndicatorCompromised, IndicatorMaliciousActivity, IndicatorAttribution,
		IndicatorUnknown:
		return true
	}
	return false
}

// MalwareType classifies a malware family or instance
type MalwareType string

const (
	MalwareAdware               MalwareType = "adware"
	MalwareBackdoor             MalwareType = "backdoor"
	MalwareBot                  MalwareType = "bot"
	MalwareBootkit              MalwareType = "bootkit"
	MalwareDDoS                 MalwareType = "ddos"
	MalwareDownloader           MalwareType = "downloader"
	MalwareDropper              MalwareType = "dropper"
	MalwareExploitKit           MalwareType = "exploit-kit"
	MalwareKeylogger            MalwareType = "keylogger"
	MalwareRansomware           MalwareType = "ransomware"
	MalwareRemoteAccessTrojan   MalwareType = "remote-access-trojan"
	MalwareResourceExploitation MalwareType = "resource-exploitation"
	MalwareRogue                MalwareType = "rogue"
	MalwareRootkit              MalwareType = "rootkit"
	MalwareScreenCapture        MalwareType = "screen-capture"
	MalwareSpyware              MalwareType = "spyware"
	MalwareTrojan               MalwareType = "trojan"
	MalwareVirus                MalwareType = "virus"
	MalwareWebshell             MalwareType = "webshell"
	MalwareWiper                MalwareType = "wiper"
	MalwareWorm                 MalwareType = "worm"
)

// IsValid checks if the malware type is a known vocabulary value
func (m MalwareType) IsValid() bool {
	switch m {
	case MalwareAdware, MalwareBackdoor, MalwareBot, MalwareBootkit,
		MalwareDDoS, MalwareDownloader, MalwareDropper, MalwareExploitKit,
		MalwareKeylogger, MalwareRansomware, MalwareRemoteAccessTrojan,
		MalwareResourceExploitation, MalwareRogue, MalwareRootkit,
		MalwareScreenCapture, MalwareSpyware, MalwareTrojan, MalwareVirus,
		MalwareWebshell, MalwareWiper, MalwareWorm:
		return true
	}
	return false
}

// ThreatActorType classifies the kind of actor behind observed activity
type ThreatActorType string

const (
	ActorActivist           ThreatActorType = "activist"
	ActorCompetitor         ThreatActorType = "competitor"
	ActorCrimeSyndicate     ThreatActorType = "crime-syndicate"
	ActorCriminal           ThreatActorType = "criminal"
	ActorHacker             ThreatActorType = "hacker"
	ActorInsiderAccidental  ThreatActorType = "insider-accidental"
	ActorInsiderDisgruntled ThreatActorType = "insider-disgruntled"
	ActorNationState        ThreatActorType = "nation-state"
	ActorSensationalist     ThreatActorType = "sensationalist"
	ActorSpy                ThreatActorType = "spy"
	ActorTerrorist          ThreatActorType = "terrorist"
	ActorUnknown            ThreatActorType = "unknown"
)

// IsValid checks if the threat actor type is a known vocabulary value
func (a ThreatActorType) IsValid() bool {
	switch a {
	case ActorActivist, ActorCompetitor, ActorCrimeSyndicate, ActorCriminal,
		ActorHacker, ActorInsiderAccidental, ActorInsiderDisgruntled,
		ActorNationState, ActorSensationalist, ActorSpy, ActorTerrorist,
		ActorUnknown:
		return true
	}
	return false
}

// ToolType classifies legitimate software used by threat actors
type ToolType string

const (
	ToolDenialOfService        ToolType = "denial-of-service"
	ToolExploitation           ToolType = "exploitation"
	ToolInformationGathering   ToolType = "information-gathering"
	ToolNetworkCapture         ToolType = "network-capture"
	ToolCredentialExploitation ToolType = "credential-exploitation"
	ToolRemoteAccess           ToolType = "remote-access"
	ToolVulnerabilityScanning  ToolType = "vulnerability-scanning"
	ToolUnknown                ToolType = "unknown"
)

// IsValid checks if the tool type is a known vocabulary value
func (t ToolType) IsValid() bool {
	switch t {
	case ToolDenialOfService, ToolExploitation, ToolInformationGathering,
		ToolNetworkCapture, ToolCredentialExploitation, ToolRemoteAccess,
		ToolVulnerabilityScanning, ToolUnknown:
		return true
	}
	return false
}

// ReportType classifies the primary subject of a report
type ReportType string

const (
	ReportAttackPattern ReportType = "attack-pattern"
	ReportCampaign      ReportType = "campaign"
	ReportIdentity      ReportType = "identity"
	ReportIndicator     ReportType = "indicator"
	ReportIntrusion     ReportType = "intrusion"
	ReportMalware       ReportType = "malware"
	ReportObservedData  ReportType = "observed-data"
	ReportThreatActor   ReportType = "threat-actor"
	ReportThreatReport  ReportType = "threat-report"
	ReportTool          ReportType = "tool"
	ReportVulnerability ReportType = "vulnerability"
)

// IsValid checks if the report type is a known vocabulary value
func (r ReportType) IsValid() bool {
	switch r {
	case ReportAttackPattern, ReportCampaign, ReportIdentity, ReportIndicator,
		ReportIntrusion, ReportMalware, ReportObservedData, ReportThreatActor,
		ReportThreatReport, ReportTool, ReportVulnerability:
		return true
	}
	return false
}

// TLPLevel is a traffic-light-protocol sharing level
type TLPLevel string

const (
	TLPWhite TLPLevel = "white"
	TLPGreen TLPLevel = "green"
	TLPAmber TLPLevel = "amber"
	TLPRed   TLPLevel = "red"
)

// IsValid checks if the TLP level is a known vocabulary value
func (l TLPLevel) IsValid() bool {
	switch l {
	case TLPWhite, TLPGreen, TLPAmber, TLPRed:
		return true
	}
	return false
}
