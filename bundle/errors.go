package bundle

import "fmt"

// DuplicateIDError is returned by Insert when an object with the same
// identifier is already present.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate object id: %s", e.ID)
}

// Is reports equality by identifier so errors.Is can match two instances.
func (e *DuplicateIDError) Is(target error) bool {
	other, ok := target.(*DuplicateIDError)
	return ok && other.ID == e.ID
}

// UnknownTypeError is returned when decoding strict-mode bundle content
// whose object type has no registered decoder.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no decoder registered for object type %q", e.Type)
}
