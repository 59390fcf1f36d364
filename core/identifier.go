package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// SpecVersion is the STIX specification version produced by this library.
const SpecVersion = "2.1"

// Media type constants for STIX and TAXII content negotiation.
const (
	// MediaTypeSTIX is the STIX 2.1 JSON media type for HTTP Content-Type headers
	MediaTypeSTIX = "application/stix+json;version=2.1"
	// MediaTypeTAXII is the TAXII 2.1 JSON media type for HTTP Content-Type headers
	MediaTypeTAXII = "application/taxii+json;version=2.1"
	// MediaTypeSTIXGeneric is the STIX JSON media type without a version parameter
	MediaTypeSTIXGeneric = "application/stix+json"
	// MediaTypeTAXIIGeneric is the TAXII JSON media type without a version parameter
	MediaTypeTAXIIGeneric = "application/taxii+json"
)

// idShapePattern matches the overall identifier shape: a lowercase hyphenated
// type token, the literal "--" separator, and a 36-character UUID segment.
// The UUID segment is additionally parsed with uuid.Parse because the
// character-class check alone accepts strings with misplaced hyphens.
var idShapePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*--[0-9a-fA-F-]{36}$`)

// ValidID reports whether id is a syntactically valid STIX identifier of the
// form "object-type--uuid". Any RFC 4122 version is accepted. The function is
// pure and never panics, including on inputs with no separator, multiple
// separators, or empty segments.
func ValidID(id string) bool {
	if !idShapePattern.MatchString(id) {
		return false
	}
	sep := strings.Index(id, "--")
	_, err := uuid.Parse(id[sep+2:])
	return err == nil
}

// ExtractType returns the object type token embedded in a STIX identifier.
// The second return value is false if the identifier is malformed.
func ExtractType(id string) (string, bool) {
	if !ValidID(id) {
		return "", false
	}
	return id[:strings.Index(id, "--")], true
}

// ParseID splits a STIX identifier into its type token and UUID segment,
// returning a *MalformedIdentifierError describing the first shape violation
// encountered.
func ParseID(id string) (objectType string, uuidPart string, err error) {
	sep := strings.Index(id, "--")
	if sep < 0 {
		return "", "", &MalformedIdentifierError{ID: id, Reason: "missing '--' separator"}
	}
	objectType = id[:sep]
	uuidPart = id[sep+2:]
	if !idShapePattern.MatchString(id) {
		return "", "", &MalformedIdentifierError{ID: id, Reason: "identifier does not match type--uuid shape"}
	}
	if _, perr := uuid.Parse(uuidPart); perr != nil {
		return "", "", &MalformedIdentifierError{ID: id, Reason: fmt.Sprintf("invalid UUID segment: %v", perr)}
	}
	return objectType, uuidPart, nil
}

// IsValidRefForType reports whether id is a valid STIX identifier whose type
// token equals expectedType. Reference fields such as created_by_ref use this
// to reject references that name the wrong kind of object.
func IsValidRefForType(id string, expectedType string) bool {
	typ, ok := ExtractType(id)
	return ok && typ == expectedType
}

// CheckRefForType is the error-reporting variant of IsValidRefForType. It
// returns nil when the reference is well formed and names expectedType, a
// *MalformedIdentifierError when the identifier is broken, and a
// *InvalidReferenceTypeError when it names a different object type.
func CheckRefForType(id string, expectedType string) error {
	typ, _, err := ParseID(id)
	if err != nil {
		return err
	}
	if typ != expectedType {
		return &InvalidReferenceTypeError{ID: id, Expected: expectedType, Actual: typ}
	}
	return nil
}

// NewID generates a fresh STIX identifier for the given object type using a
// random UUIDv4.
func NewID(objectType string) string {
	return fmt.Sprintf("%s--%s", objectType, uuid.New())
}

// TypeRegistry is an explicit set of known object type tokens. Validation
// against a registry is opt-in: callers that need to restrict identifiers to
// a closed type set construct a registry and pass it in, keeping the core
// free of process-wide mutable state and tests isolated from each other.
type TypeRegistry struct {
	types map[string]struct{}
}

// NewTypeRegistry builds a registry from the given type tokens.
func NewTypeRegistry(types ...string) *TypeRegistry {
	r := &TypeRegistry{types: make(map[string]struct{}, len(types))}
	for _, t := range types {
		r.types[t] = struct{}{}
	}
	return r
}

// Add registers additional type tokens. It returns the registry for chaining.
func (r *TypeRegistry) Add(types ...string) *TypeRegistry {
	for _, t := range types {
		r.types[t] = struct{}{}
	}
	return r
}

// Contains reports whether the type token is registered.
func (r *TypeRegistry) Contains(objectType string) bool {
	if r == nil {
		return false
	}
	_, ok := r.types[objectType]
	return ok
}

// Types returns the registered type tokens in unspecified order.
func (r *TypeRegistry) Types() []string {
	out := make([]string, 0, len(r.types))
	for t := range r.types {
		out = append(out, t)
	}
	return out
}

// ValidIDForRegistry reports whether id is a valid STIX identifier whose type
// token is registered in reg.
func ValidIDForRegistry(id string, reg *TypeRegistry) bool {
	typ, ok := ExtractType(id)
	return ok && reg.Contains(typ)
}
