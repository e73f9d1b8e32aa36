// Package registry stores canonical document templates by name and dispenses
// deep clones on lookup. A stored master is the single source of truth for
// its name and is never handed out directly, so no caller can mutate it.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-doctmpl/pkg/template"
)

// Registry tracks master templates keyed by name. Callers can register new
// masters or overwrite existing ones; Create always returns an independent
// clone. A single lock covers both paths so a concurrent overwrite cannot
// race a lookup.
type Registry struct {
	mu      sync.RWMutex
	masters map[string]*template.DocumentTemplate
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		masters: make(map[string]*template.DocumentTemplate),
	}
}

// Register stores tmpl as the master under name, replacing any existing
// entry. The registry takes ownership of the exact instance: it is not
// cloned on the way in, and callers must not mutate it afterwards.
func (r *Registry) Register(name string, tmpl *template.DocumentTemplate) error {
	if name = strings.TrimSpace(name); name == "" {
		return fmt.Errorf("registry: template name is required")
	}
	if tmpl == nil {
		return fmt.Errorf("registry: template %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.masters[name] = tmpl
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying init-time
// seeding.
func (r *Registry) MustRegister(name string, tmpl *template.DocumentTemplate) {
	if err := r.Register(name, tmpl); err != nil {
		panic(err)
	}
}

// Create returns a deep clone of the master registered under name. The clone
// is owned entirely by the caller; mutating it never affects the master or
// any other clone. A missing name yields a *NotFoundError.
func (r *Registry) Create(name string) (*template.DocumentTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	master, ok := r.masters[strings.TrimSpace(name)]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return master.Clone(), nil
}

// Has reports whether a master is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.masters[strings.TrimSpace(name)]
	return ok
}

// Names returns the sorted names of all registered masters.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.masters))
	for name := range r.masters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
