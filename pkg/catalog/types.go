package catalog

import (
	"strings"

	"github.com/goliatone/go-doctmpl/pkg/template"
)

// Definition is one named template parsed from a catalog file. The wire
// shape mirrors the entity model with dual tags so catalogs can be authored
// in YAML or JSON interchangeably.
type Definition struct {
	Name           string            `json:"-" yaml:"-"`
	Source         string            `json:"-" yaml:"-"`
	Title          string            `json:"title" yaml:"title"`
	Category       string            `json:"category" yaml:"category"`
	Sections       []SectionDef      `json:"sections,omitempty" yaml:"sections,omitempty"`
	Style          *StyleDef         `json:"style,omitempty" yaml:"style,omitempty"`
	RequiredFields []string          `json:"requiredFields,omitempty" yaml:"requiredFields,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Workflow       *WorkflowDef      `json:"workflow,omitempty" yaml:"workflow,omitempty"`
	Tags           []string          `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// SectionDef serialises a template section.
type SectionDef struct {
	Name         string   `json:"name" yaml:"name"`
	Content      string   `json:"content" yaml:"content"`
	Editable     bool     `json:"editable,omitempty" yaml:"editable,omitempty"`
	Placeholders []string `json:"placeholders,omitempty" yaml:"placeholders,omitempty"`
}

// StyleDef serialises a document style.
type StyleDef struct {
	FontFamily  string      `json:"fontFamily" yaml:"fontFamily"`
	FontSize    int         `json:"fontSize" yaml:"fontSize"`
	HeaderColor string      `json:"headerColor,omitempty" yaml:"headerColor,omitempty"`
	LogoURL     string      `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	PageMargins *MarginsDef `json:"pageMargins,omitempty" yaml:"pageMargins,omitempty"`
}

// MarginsDef serialises page margins.
type MarginsDef struct {
	Top    int `json:"top" yaml:"top"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Left   int `json:"left" yaml:"left"`
	Right  int `json:"right" yaml:"right"`
}

// WorkflowDef serialises an approval workflow.
type WorkflowDef struct {
	Approvers         []string `json:"approvers" yaml:"approvers"`
	RequiredApprovals int      `json:"requiredApprovals" yaml:"requiredApprovals"`
	TimeoutDays       int      `json:"timeoutDays,omitempty" yaml:"timeoutDays,omitempty"`
}

// Template materialises the definition into an entity graph. The returned
// template owns all of its storage; the definition can be discarded or
// re-materialised without aliasing concerns.
func (d Definition) Template() *template.DocumentTemplate {
	tmpl := &template.DocumentTemplate{
		Title:    d.Title,
		Category: d.Category,
	}
	if len(d.Sections) > 0 {
		tmpl.Sections = make([]template.Section, len(d.Sections))
		for i, section := range d.Sections {
			tmpl.Sections[i] = template.Section{
				Name:         section.Name,
				Content:      section.Content,
				Editable:     section.Editable,
				Placeholders: append([]string(nil), section.Placeholders...),
			}
		}
	}
	if d.Style != nil {
		style := &template.DocumentStyle{
			FontFamily:  d.Style.FontFamily,
			FontSize:    d.Style.FontSize,
			HeaderColor: d.Style.HeaderColor,
			LogoURL:     d.Style.LogoURL,
		}
		if d.Style.PageMargins != nil {
			style.PageMargins = &template.Margins{
				Top:    d.Style.PageMargins.Top,
				Bottom: d.Style.PageMargins.Bottom,
				Left:   d.Style.PageMargins.Left,
				Right:  d.Style.PageMargins.Right,
			}
		}
		tmpl.Style = style
	}
	if len(d.RequiredFields) > 0 {
		tmpl.RequiredFields = append([]string(nil), d.RequiredFields...)
	}
	if len(d.Metadata) > 0 {
		tmpl.Metadata = make(map[string]string, len(d.Metadata))
		for k, v := range d.Metadata {
			tmpl.Metadata[k] = v
		}
	}
	if d.Workflow != nil {
		tmpl.Workflow = &template.ApprovalWorkflow{
			Approvers:         append([]string(nil), d.Workflow.Approvers...),
			RequiredApprovals: d.Workflow.RequiredApprovals,
			TimeoutDays:       d.Workflow.TimeoutDays,
		}
	}
	if len(d.Tags) > 0 {
		tmpl.Tags = append([]string(nil), d.Tags...)
	}
	return tmpl
}

// FromTemplate converts an entity graph back into its wire shape, used by
// tooling that prints templates or clones as YAML.
func FromTemplate(name string, tmpl *template.DocumentTemplate) Definition {
	def := Definition{
		Name:     strings.TrimSpace(name),
		Title:    tmpl.Title,
		Category: tmpl.Category,
	}
	if len(tmpl.Sections) > 0 {
		def.Sections = make([]SectionDef, len(tmpl.Sections))
		for i, section := range tmpl.Sections {
			def.Sections[i] = SectionDef{
				Name:         section.Name,
				Content:      section.Content,
				Editable:     section.Editable,
				Placeholders: append([]string(nil), section.Placeholders...),
			}
		}
	}
	if tmpl.Style != nil {
		style := &StyleDef{
			FontFamily:  tmpl.Style.FontFamily,
			FontSize:    tmpl.Style.FontSize,
			HeaderColor: tmpl.Style.HeaderColor,
			LogoURL:     tmpl.Style.LogoURL,
		}
		if tmpl.Style.PageMargins != nil {
			style.PageMargins = &MarginsDef{
				Top:    tmpl.Style.PageMargins.Top,
				Bottom: tmpl.Style.PageMargins.Bottom,
				Left:   tmpl.Style.PageMargins.Left,
				Right:  tmpl.Style.PageMargins.Right,
			}
		}
		def.Style = style
	}
	if len(tmpl.RequiredFields) > 0 {
		def.RequiredFields = append([]string(nil), tmpl.RequiredFields...)
	}
	if len(tmpl.Metadata) > 0 {
		def.Metadata = make(map[string]string, len(tmpl.Metadata))
		for k, v := range tmpl.Metadata {
			def.Metadata[k] = v
		}
	}
	if tmpl.Workflow != nil {
		def.Workflow = &WorkflowDef{
			Approvers:         append([]string(nil), tmpl.Workflow.Approvers...),
			RequiredApprovals: tmpl.Workflow.RequiredApprovals,
			TimeoutDays:       tmpl.Workflow.TimeoutDays,
		}
	}
	if len(tmpl.Tags) > 0 {
		def.Tags = append([]string(nil), tmpl.Tags...)
	}
	return def
}

type catalogFile struct {
	Templates map[string]Definition `json:"templates" yaml:"templates"`
}
