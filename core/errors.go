package core

import (
	"errors"
	"fmt"
)

// ErrNoTemporalProgress is returned by VersionPolicy.NewVersion when the clock
// has not advanced past the object's current modified timestamp. The object is
// left untouched; retrying after the clock advances is the caller's decision.
var ErrNoTemporalProgress = errors.New("clock has not advanced past current modified timestamp")

// ErrAlreadyRevoked is returned when revoking an object that is already
// revoked. Revocation is one-way; there is no un-revoke operation.
var ErrAlreadyRevoked = errors.New("object is already revoked")

// MalformedIdentifierError reports a string that does not conform to the
// STIX "object-type--uuid" identifier format.
type MalformedIdentifierError struct {
	// ID is the offending identifier string
	ID string
	// Reason describes the first shape violation encountered
	Reason string
}

// Error implements the error interface for MalformedIdentifierError.
func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed STIX identifier %q: %s", e.ID, e.Reason)
}

// Is implements error matching for errors.Is().
// Returns true if the target is a MalformedIdentifierError for the same ID.
func (e *MalformedIdentifierError) Is(target error) bool {
	t, ok := target.(*MalformedIdentifierError)
	if !ok {
		return false
	}
	return e.ID == t.ID
}

// InvalidReferenceTypeError reports a reference field whose identifier names
// an object type other than the one the field requires (e.g. a created_by_ref
// that does not point at an identity).
type InvalidReferenceTypeError struct {
	// ID is the reference value that was checked
	ID string
	// Expected is the object type the field requires
	Expected string
	// Actual is the object type embedded in the identifier
	Actual string
}

// Error implements the error interface for InvalidReferenceTypeError.
func (e *InvalidReferenceTypeError) Error() string {
	return fmt.Sprintf("reference %q names object type %q, expected %q", e.ID, e.Actual, e.Expected)
}

// Is implements error matching for errors.Is().
// Returns true if the target is an InvalidReferenceTypeError for the same ID.
func (e *InvalidReferenceTypeError) Is(target error) bool {
	t, ok := target.(*InvalidReferenceTypeError)
	if !ok {
		return false
	}
	return e.ID == t.ID
}
