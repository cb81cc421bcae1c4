package record

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

// ErrDuplicateFormID is returned when a form id is registered twice.
var ErrDuplicateFormID = errors.New("duplicate form id")

// Registry indexes records by form id, editor id and tag.
//
// Writes are serialized; the registry is meant to be read only after
// ingestion has finished.
type Registry struct {
	mu       sync.RWMutex
	byFormID map[string]Record
	byEditor map[string]Record
	byTag    map[Tag][]Record
	order    []Record
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byFormID: make(map[string]Record),
		byEditor: make(map[string]Record),
		byTag:    make(map[Tag][]Record),
	}
}

// Register adds rec to all three indices. A form id that is already taken is
// rejected and the registry is left unchanged. Editor ids are last write
// wins; NoEditorID is never indexed.
func (r *Registry) Register(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byFormID[rec.FormID()]; ok {
		return fmt.Errorf("%w: %s collides with %s", ErrDuplicateFormID, rec, prev)
	}

	r.byFormID[rec.FormID()] = rec

	if id := rec.EditorID(); id != "" && id != NoEditorID {
		r.byEditor[id] = rec
	}

	r.byTag[rec.Tag()] = append(r.byTag[rec.Tag()], rec)
	r.order = append(r.order, rec)

	return nil
}

// FindByFormID returns the record with the given raw form id.
func (r *Registry) FindByFormID(formID string) (Record, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byFormID[formID]

	return rec, ok
}

// FindByEditorID returns the record last registered under editorID.
func (r *Registry) FindByEditorID(editorID string) (Record, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byEditor[editorID]

	return rec, ok
}

// Group returns the records of one tag in registration order.
func (r *Registry) Group(tag Tag) []Record {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Record(nil), r.byTag[tag]...)
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// Tags returns the tags present in the registry, sorted.
func (r *Registry) Tags() []Tag {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]Tag, 0, len(r.byTag))
	for t := range r.byTag {
		tags = append(tags, t)
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	return tags
}

// EditorIDs returns every indexed editor id, sorted.
func (r *Registry) EditorIDs() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byEditor))
	for id := range r.byEditor {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Find returns the record registered under formID if it is a T.
// A record of another type is reported as absent.
func Find[T Record](reg *Registry, formID string) (T, bool) {
	var zero T
	if reg == nil {
		return zero, false
	}

	rec, ok := reg.FindByFormID(formID)
	if !ok {
		return zero, false
	}

	typed, ok := rec.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// FindRef is Find for a reference written raw or decorated.
func FindRef[T Record](reg *Registry, ref string) (T, bool) {
	return Find[T](reg, value.FormRef(ref))
}

// FindByEditor returns the record registered under editorID if it is a T.
func FindByEditor[T Record](reg *Registry, editorID string) (T, bool) {
	var zero T
	if reg == nil {
		return zero, false
	}

	rec, ok := reg.FindByEditorID(editorID)
	if !ok {
		return zero, false
	}

	typed, ok := rec.(T)

	return typed, ok
}

// Collect returns the records of tag that are a T, in registration order.
func Collect[T Record](reg *Registry, tag Tag) []T {
	if reg == nil {
		return nil
	}

	var out []T

	for _, rec := range reg.Group(tag) {
		if typed, ok := rec.(T); ok {
			out = append(out, typed)
		}
	}

	return out
}
