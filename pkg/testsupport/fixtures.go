// Package testsupport provides fixture template graphs shared by contract
// tests across the module.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-doctmpl/pkg/registry"
	"github.com/goliatone/go-doctmpl/pkg/template"
)

// ContractTemplate builds the canonical service-contract fixture: three
// sections, full style with margins, and a two-approver workflow. Each call
// returns a fresh graph so tests can mutate freely.
func ContractTemplate() *template.DocumentTemplate {
	return &template.DocumentTemplate{
		Title:    "Service Contract",
		Category: "legal",
		Sections: []template.Section{
			{
				Name:         "header",
				Content:      "Contract between {{provider}} and {{client}}",
				Placeholders: []string{"provider", "client"},
			},
			{
				Name:         "scope",
				Content:      "Services to be provided: {{services}}",
				Editable:     true,
				Placeholders: []string{"services"},
			},
			{
				Name:    "signatures",
				Content: "Signed by both parties.",
			},
		},
		Style: &template.DocumentStyle{
			FontFamily:  "Times New Roman",
			FontSize:    12,
			HeaderColor: "#1a1a2e",
			LogoURL:     "https://example.com/logo.png",
			PageMargins: &template.Margins{Top: 72, Bottom: 72, Left: 54, Right: 54},
		},
		RequiredFields: []string{"provider", "client", "services"},
		Metadata:       map[string]string{"department": "legal", "revision": "3"},
		Workflow: &template.ApprovalWorkflow{
			Approvers:         []string{"legal-lead", "cfo"},
			RequiredApprovals: 2,
			TimeoutDays:       14,
		},
		Tags: []string{"contract", "services"},
	}
}

// InvoiceTemplate builds a minimal fixture without optional entities.
func InvoiceTemplate() *template.DocumentTemplate {
	return &template.DocumentTemplate{
		Title:    "Invoice",
		Category: "finance",
		Sections: []template.Section{
			{Name: "items", Content: "{{lineItems}}", Editable: true, Placeholders: []string{"lineItems"}},
		},
		Tags: []string{"billing"},
	}
}

// SeedRegistry returns a registry preloaded with the standard fixtures.
func SeedRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()
	reg.MustRegister("service_contract", ContractTemplate())
	reg.MustRegister("invoice", InvoiceTemplate())
	return reg
}
