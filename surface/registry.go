// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/minigui"
)

// HostFactory creates a new Host with the given options.
type HostFactory func(opts Options) (Host, error)

// RegistryEntry represents a registered host.
type RegistryEntry struct {
	// Name is the unique identifier for this host.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: OS windows
	//   - 10: terminals
	//   - 0: off-screen
	Priority int

	// Factory creates host instances.
	Factory HostFactory

	// Available reports if the host can run on this system.
	Available func() bool
}

// globalRegistry is the default registry.
var globalRegistry = &Registry{}

// Registry manages registered hosts.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*RegistryEntry
}

// NewRegistry creates a new empty registry.
// Most code should use the global registry via Register and NewHost.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*RegistryEntry),
	}
}

// Register adds a host to the global registry.
//
// If available is nil, the host is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory HostFactory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a host from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// List returns all registered host names sorted by priority (highest first).
func List() []string {
	return globalRegistry.List()
}

// Available returns names of all available hosts sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// NewHost creates a host using the best available entry of the global
// registry.
func NewHost(opts Options) (Host, error) {
	return globalRegistry.NewHost(opts)
}

// NewHostByName creates a host using a specific entry of the global
// registry.
func NewHostByName(name string, opts Options) (Host, error) {
	return globalRegistry.NewHostByName(name, opts)
}

// Register adds a host to this registry.
func (r *Registry) Register(name string, priority int, factory HostFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*RegistryEntry)
	}
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

// Unregister removes a host from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered host names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available hosts sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the entry registered under name.
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

// NewHost tries every available host in priority order and returns the
// first one that starts. If all fail, the last error is returned.
func (r *Registry) NewHost(opts Options) (Host, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoHost
	}

	log := minigui.Logger()
	var lastErr error
	for _, name := range available {
		h, err := r.NewHostByName(name, opts)
		if err == nil {
			log.Info("surface: host selected", "host", name)
			return h, nil
		}
		log.Warn("surface: host failed to start", "host", name, "error", err)
		lastErr = err
	}
	return nil, lastErr
}

// NewHostByName creates a host using a specific entry.
func (r *Registry) NewHostByName(name string, opts Options) (Host, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &HostNotFoundError{Name: name}
	}
	if !entry.Available() {
		return nil, &HostUnavailableError{Name: name}
	}
	return entry.Factory(opts)
}

// sortedNames returns host names sorted by priority (highest first), then
// by name. If onlyAvailable is true, unavailable hosts are left out.
// Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	entries := make([]*RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, e)
	}
	slices.SortFunc(entries, func(a, b *RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Errors.
var (
	// ErrNoHost is returned when no hosts are registered or available on
	// the current system.
	ErrNoHost = errors.New("surface: no host available")
)

// HostNotFoundError indicates a named host is not registered.
type HostNotFoundError struct {
	Name string
}

func (e *HostNotFoundError) Error() string {
	return "surface: host not found: " + e.Name
}

// HostUnavailableError indicates a host is registered but cannot run here.
type HostUnavailableError struct {
	Name string
}

func (e *HostUnavailableError) Error() string {
	return "surface: host unavailable: " + e.Name
}

// init registers the built-in off-screen host.
func init() {
	Register(ImageHostName, 0, func(opts Options) (Host, error) {
		return NewImageHost(opts.Width, opts.Height), nil
	}, nil)
}
