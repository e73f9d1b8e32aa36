// Package service provides the boundary layer that seeds a registry with
// master templates and requests clones on behalf of callers. It owns its
// registry explicitly rather than relying on package-level state, which keeps
// the whole stack constructible in tests.
package service

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-doctmpl/pkg/catalog"
	"github.com/goliatone/go-doctmpl/pkg/registry"
	"github.com/goliatone/go-doctmpl/pkg/template"
)

// Option customises the service configuration.
type Option func(*Service)

// WithRegistry injects an existing registry instead of the default empty one.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Service) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// Service builds and registers master templates and dispenses clones. All
// template creation flows through Create so callers never touch a master.
type Service struct {
	registry *registry.Registry
}

// New creates a service with an empty registry unless one is injected.
func New(options ...Option) *Service {
	svc := &Service{registry: registry.New()}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Registry exposes the underlying registry for callers that wire it into
// other components.
func (s *Service) Registry() *registry.Registry {
	return s.registry
}

// Register stores tmpl as the master under name. The service takes ownership
// of the instance; callers must not mutate it afterwards.
func (s *Service) Register(name string, tmpl *template.DocumentTemplate) error {
	return s.registry.Register(name, tmpl)
}

// Create returns an independent clone of the master registered under name.
func (s *Service) Create(name string) (*template.DocumentTemplate, error) {
	return s.registry.Create(name)
}

// Names lists the registered master names in sorted order.
func (s *Service) Names() []string {
	return s.registry.Names()
}

// SeedFS loads catalog definitions from the filesystem and registers each as
// a master.
func (s *Service) SeedFS(fsys fs.FS) error {
	defs, err := catalog.LoadFS(fsys)
	if err != nil {
		return err
	}
	return catalog.Seed(s.registry, defs)
}

// Derive registers a new master under newName built by cloning the master
// registered under fromName and applying mutate to the clone. The source
// master is untouched: the clone contract guarantees the mutation cannot
// reach it. mutate may be nil to register a verbatim copy.
func (s *Service) Derive(fromName, newName string, mutate func(*template.DocumentTemplate)) error {
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("service: derived template name is required")
	}

	derived, err := s.registry.Create(fromName)
	if err != nil {
		return fmt.Errorf("service: derive %q: %w", newName, err)
	}
	if mutate != nil {
		mutate(derived)
	}
	return s.registry.Register(newName, derived)
}
