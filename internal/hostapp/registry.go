package hostapp

import (
	"fmt"
	"strings"
)

// DuplicateIDError reports a second registration of an application id.
// This is a startup misconfiguration and is the only condition in this
// package that should halt the process.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("hostapp: duplicate application id %q", e.ID)
}

// Registry holds the fixed catalog of known applications. Registration
// order is preserved and determines probe priority during resolution. The
// registry is populated once at startup and is read-only afterwards.
type Registry struct {
	order []*Descriptor
	byID  map[string]*Descriptor
}

// NewRegistry builds a registry from descriptors, preserving their order.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Descriptor, len(descs))}
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends a descriptor. It returns *DuplicateIDError when the id
// is already present, or a validation error for a malformed descriptor.
func (r *Registry) Register(d Descriptor) error {
	if r.byID == nil {
		r.byID = make(map[string]*Descriptor)
	}
	if err := validateDescriptor(d); err != nil {
		return err
	}
	if _, exists := r.byID[d.ID]; exists {
		return &DuplicateIDError{ID: d.ID}
	}
	desc := d
	r.byID[d.ID] = &desc
	r.order = append(r.order, &desc)
	return nil
}

// GetByID returns the descriptor registered under id, if any.
func (r *Registry) GetByID(id string) (*Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// All returns the descriptors in registration order. The returned slice is
// a copy; the descriptors themselves must not be modified.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered applications.
func (r *Registry) Len() int {
	return len(r.order)
}

func validateDescriptor(d Descriptor) error {
	if d.ID == "" {
		return fmt.Errorf("hostapp: descriptor has empty id")
	}
	if d.ID != strings.ToLower(d.ID) || strings.ContainsAny(d.ID, " -") {
		return fmt.Errorf("hostapp: application id %q must be lowercase snake_case", d.ID)
	}
	if d.Probe == nil {
		return fmt.Errorf("hostapp: application %q has no probe", d.ID)
	}
	for _, a := range d.ExecutableAliases {
		if a == "" || a != strings.ToLower(a) {
			return fmt.Errorf("hostapp: application %q has invalid executable alias %q", d.ID, a)
		}
	}
	return nil
}
