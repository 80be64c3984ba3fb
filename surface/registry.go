// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"sync"

	"github.com/samber/lo"
)

// Factory creates a new Context with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Context, error)

// RegistryEntry represents a registered context backend.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates context instances.
	Factory Factory

	// Available reports if the backend can be used.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// Registry manages registered context backends.
//
// Example registration:
//
//	func init() {
//	    surface.Register("pdf", 20, pdfFactory, nil)
//	}
//
// Example usage:
//
//	ctx, err := surface.NewContextByName("svg", surface.Options{Width: 800, Height: 600})
//	// or pick the best available:
//	ctx, err := surface.NewContext(surface.Options{Width: 800, Height: 600})
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewContext.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// NewContext creates a context using the best available backend.
func NewContext(opts Options) (Context, error) {
	return globalRegistry.NewContext(opts)
}

// NewContextByName creates a context using a specific named backend.
func NewContextByName(name string, opts Options) (Context, error) {
	return globalRegistry.NewContextByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of a backend's entry.
func (r *Registry) Get(name string) (*RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	entryCopy := *entry
	return &entryCopy, true
}

// NewContext tries available backends in priority order and returns the
// first context created successfully.
func (r *Registry) NewContext(opts Options) (Context, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range available {
		ctx, err := r.NewContextByName(name, opts)
		if err == nil {
			return ctx, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewContextByName creates a context using a specific backend.
func (r *Registry) NewContextByName(name string, opts Options) (Context, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &InvalidSizeError{Width: opts.Width, Height: opts.Height}
	}
	return entry.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	entries := lo.Filter(lo.Values(r.entries), func(e *RegistryEntry, _ int) bool {
		return !onlyAvailable || e.Available()
	})
	slices.SortFunc(entries, func(a, b *RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return lo.Map(entries, func(e *RegistryEntry, _ int) string {
		return e.Name
	})
}

// Errors.
var (
	// ErrNoBackendAvailable is returned when no backends are registered
	// or available.
	ErrNoBackendAvailable = errors.New("surface: no backend available")
)

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// InvalidSizeError is returned for non-positive context sizes.
type InvalidSizeError struct {
	Width, Height int
}

func (e *InvalidSizeError) Error() string {
	return "surface: invalid size " + strconv.Itoa(e.Width) + "x" + strconv.Itoa(e.Height)
}

// init registers the built-in backends.
func init() {
	Register("image", 10, func(opts Options) (Context, error) {
		c := NewImageContext(opts.Width, opts.Height)
		if opts.Background.A != 0 {
			c.Clear(opts.Background)
		}
		return c, nil
	}, nil)
	Register("svg", 5, func(opts Options) (Context, error) {
		c := NewSVGContext(opts.Width, opts.Height)
		if opts.Background.A != 0 {
			c.Clear(opts.Background)
		}
		return c, nil
	}, nil)
	Register("pick", 1, func(opts Options) (Context, error) {
		return NewPickContext(opts.Width, opts.Height), nil
	}, nil)
}
