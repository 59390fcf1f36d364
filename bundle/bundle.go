package bundle

import (
	"sort"

	"stixcore/core"
	"stixcore/metrics"
)

// Bundle holds objects in insertion order together with two derived indices:
// byID for identity lookup and refIndex mapping a target identifier to the
// insertion-ordered list of object IDs that reference it.
type Bundle struct {
	id       string
	objects  []core.Object
	byID     map[string]core.Object
	refIndex map[string][]string
}

// New creates an empty bundle with a fresh bundle identifier.
func New() *Bundle {
	return NewWithID(core.NewID("bundle"))
}

// NewWithID creates an empty bundle using the given identifier. The id is
// kept as-is; it is validated when the bundle is serialized.
func NewWithID(id string) *Bundle {
	return &Bundle{
		id:       id,
		byID:     make(map[string]core.Object),
		refIndex: make(map[string][]string),
	}
}

// ID returns the bundle's own identifier.
func (b *Bundle) ID() string {
	return b.id
}

// Insert adds obj to the bundle and records a reverse-reference edge for
// every identifier in its reference fields. It either fully succeeds or
// leaves the bundle untouched: all checks run before the first mutation.
//
// A reference to an object not present in the bundle is not an error;
// bundles are routinely partial views of a larger corpus.
func (b *Bundle) Insert(obj core.Object) error {
	id := obj.ID()
	if _, _, err := core.ParseID(id); err != nil {
		metrics.BundleInsertFailures.Inc()
		return err
	}
	if _, exists := b.byID[id]; exists {
		metrics.BundleInsertFailures.Inc()
		return &DuplicateIDError{ID: id}
	}

	b.objects = append(b.objects, obj)
	b.byID[id] = obj

	// Dedup per inserted object so one source appears at most once per
	// target, even when several of its fields name the same identifier.
	seen := make(map[string]bool)
	for _, field := range obj.ReferenceFields() {
		for _, target := range field.Refs {
			if target == "" || seen[target] {
				continue
			}
			seen[target] = true
			b.refIndex[target] = append(b.refIndex[target], id)
		}
	}

	metrics.BundleObjectsInserted.WithLabelValues(obj.Type()).Inc()
	return nil
}

// Get returns the object with the given identifier.
func (b *Bundle) Get(id string) (core.Object, bool) {
	obj, ok := b.byID[id]
	return obj, ok
}

// Len returns the number of objects in the bundle.
func (b *Bundle) Len() int {
	return len(b.objects)
}

// Objects returns the objects in insertion order. The returned slice is a
// copy; the objects themselves are shared.
func (b *Bundle) Objects() []core.Object {
	out := make([]core.Object, len(b.objects))
	copy(out, b.objects)
	return out
}

// FilterByType returns the objects of the given type in insertion order.
func (b *Bundle) FilterByType(objectType string) []core.Object {
	var out []core.Object
	for _, obj := range b.objects {
		if obj.Type() == objectType {
			out = append(out, obj)
		}
	}
	return out
}

// FindReferencesTo returns every object whose reference fields name id, in
// insertion order. An object referencing id from multiple fields appears
// once.
func (b *Bundle) FindReferencesTo(id string) []core.Object {
	sources := b.refIndex[id]
	if len(sources) == 0 {
		return nil
	}
	out := make([]core.Object, 0, len(sources))
	for _, sourceID := range sources {
		out = append(out, b.byID[sourceID])
	}
	return out
}

// CountByType returns the number of objects per type.
func (b *Bundle) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, obj := range b.objects {
		counts[obj.Type()]++
	}
	return counts
}

// ObjectTypes returns the distinct object types present, sorted.
func (b *Bundle) ObjectTypes() []string {
	counts := b.CountByType()
	types := make([]string, 0, len(counts))
	for typ := range counts {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}
