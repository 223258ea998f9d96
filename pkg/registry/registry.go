package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/tabitha/pkg/form"
)

// ErrUnknownSchema is returned when no validator is registered under a name.
var ErrUnknownSchema = errors.New("unknown schema")

// Observer is notified after every validation run through a Registry.
type Observer interface {
	ObserveValidation(name string, res form.Result, elapsed time.Duration)
}

// Entry is a named payload validator.
type Entry struct {
	Name        string
	Description string
	Validator   *form.Validator
}

// Registry manages the available payload validators.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	observer Observer
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register adds a validator to the registry.
// If a validator with the same name exists, it is overwritten.
func (r *Registry) Register(name, description string, v *form.Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = Entry{Name: name, Description: description, Validator: v}
}

// Observe sets the observer notified by Validate. A nil observer disables
// notifications.
func (r *Registry) Observe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = o
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return e, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate looks up a validator by name and runs it against data.
// Returns an error only if the name is not registered; invalid data is
// reported in the result.
func (r *Registry) Validate(name string, data any) (form.Result, error) {
	e, err := r.Lookup(name)
	if err != nil {
		return form.Result{}, err
	}

	start := time.Now()
	res := e.Validator.Validate(data)

	r.mu.RLock()
	o := r.observer
	r.mu.RUnlock()
	if o != nil {
		o.ObserveValidation(name, res, time.Since(start))
	}
	return res, nil
}
