// Package doctmpl exposes the document template registry through a single
// import. Masters are registered once, and every Create hands back a deep
// clone whose object graph shares no mutable storage with the stored master,
// so callers can rewrite sections, styles, workflows, metadata, and tags on
// their copy without affecting anyone else's.
package doctmpl

import (
	"io/fs"

	"github.com/goliatone/go-doctmpl/pkg/catalog"
	"github.com/goliatone/go-doctmpl/pkg/registry"
	"github.com/goliatone/go-doctmpl/pkg/service"
	"github.com/goliatone/go-doctmpl/pkg/template"
)

// DocumentTemplate is the composite template entity; see pkg/template.
type DocumentTemplate = template.DocumentTemplate

// Section is a named block of template content.
type Section = template.Section

// DocumentStyle carries the visual treatment of a template.
type DocumentStyle = template.DocumentStyle

// Margins holds page margins in points.
type Margins = template.Margins

// ApprovalWorkflow describes sign-off requirements for produced documents.
type ApprovalWorkflow = template.ApprovalWorkflow

// Registry stores masters by name and dispenses clones.
type Registry = registry.Registry

// NotFoundError reports a lookup for an unregistered template name.
type NotFoundError = registry.NotFoundError

// ErrNotFound is the sentinel matched by errors.Is for registry misses.
var ErrNotFound = registry.ErrNotFound

// Service is the boundary layer that seeds registries and derives templates.
type Service = service.Service

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return registry.New()
}

// NewService creates a service, defaulting to a fresh registry.
func NewService(options ...service.Option) *Service {
	return service.New(options...)
}

// WithRegistry injects an existing registry into NewService.
func WithRegistry(reg *Registry) service.Option {
	return service.WithRegistry(reg)
}

// LoadCatalog parses template definitions from the supplied filesystem. Pair
// it with Seed to populate a registry from authored YAML/JSON files.
func LoadCatalog(fsys fs.FS) ([]catalog.Definition, error) {
	return catalog.LoadFS(fsys)
}

// Seed registers every definition's master template in reg.
func Seed(reg *Registry, defs []catalog.Definition) error {
	return catalog.Seed(reg, defs)
}
