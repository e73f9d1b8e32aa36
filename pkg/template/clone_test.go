package template

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTemplate() *DocumentTemplate {
	return &DocumentTemplate{
		Title:    "Service Contract",
		Category: "legal",
		Sections: []Section{
			{
				Name:         "header",
				Content:      "Contract between {{provider}} and {{client}}",
				Editable:     false,
				Placeholders: []string{"provider", "client"},
			},
			{
				Name:         "scope",
				Content:      "Services to be provided: {{services}}",
				Editable:     true,
				Placeholders: []string{"services"},
			},
			{
				Name:     "signatures",
				Content:  "Signed by both parties.",
				Editable: false,
			},
		},
		Style: &DocumentStyle{
			FontFamily:  "Times New Roman",
			FontSize:    12,
			HeaderColor: "#1a1a2e",
			LogoURL:     "https://example.com/logo.png",
			PageMargins: &Margins{Top: 72, Bottom: 72, Left: 54, Right: 54},
		},
		RequiredFields: []string{"provider", "client", "services"},
		Metadata:       map[string]string{"department": "legal", "revision": "3"},
		Workflow: &ApprovalWorkflow{
			Approvers:         []string{"legal-lead", "cfo"},
			RequiredApprovals: 2,
			TimeoutDays:       14,
		},
		Tags: []string{"contract", "services"},
	}
}

func TestCloneStructurallyEqual(t *testing.T) {
	master := sampleTemplate()
	clone := master.Clone()

	if clone == master {
		t.Fatal("clone returned the same instance")
	}
	if diff := cmp.Diff(master, clone); diff != "" {
		t.Fatalf("clone differs from source (-want +got):\n%s", diff)
	}
}

func TestCloneScalarMutationIsolated(t *testing.T) {
	master := sampleTemplate()
	clone := master.Clone()

	clone.Title = "Amended Contract"
	clone.Category = "archived"

	if master.Title != "Service Contract" || master.Category != "legal" {
		t.Fatalf("scalar mutation leaked into source: %q/%q", master.Title, master.Category)
	}
}

func TestCloneSectionMutationIsolated(t *testing.T) {
	master := sampleTemplate()
	clone := master.Clone()

	clone.Sections[0].Content = "rewritten"
	clone.Sections[0].Placeholders[0] = "vendor"
	clone.Sections = append(clone.Sections, Section{Name: "annex"})

	if master.Sections[0].Content != "Contract between {{provider}} and {{client}}" {
		t.Fatalf("section content leaked: %q", master.Sections[0].Content)
	}
	if master.Sections[0].Placeholders[0] != "provider" {
		t.Fatalf("placeholder mutation leaked: %v", master.Sections[0].Placeholders)
	}
	if len(master.Sections) != 3 {
		t.Fatalf("section append leaked, master has %d sections", len(master.Sections))
	}
}

func TestCloneStyleAndMarginsIsolated(t *testing.T) {
	master := sampleTemplate()
	clone := master.Clone()

	if clone.Style == master.Style {
		t.Fatal("style instance is shared")
	}
	if clone.Style.PageMargins == master.Style.PageMargins {
		t.Fatal("page margins instance is shared")
	}

	clone.Style.FontFamily = "Helvetica"
	clone.Style.PageMargins.Top = 10

	if master.Style.FontFamily != "Times New Roman" {
		t.Fatalf("style mutation leaked: %q", master.Style.FontFamily)
	}
	if master.Style.PageMargins.Top != 72 {
		t.Fatalf("margins mutation leaked: %d", master.Style.PageMargins.Top)
	}
}

func TestCloneWorkflowIsolated(t *testing.T) {
	master := sampleTemplate()
	clone := master.Clone()

	clone.Workflow.Approvers[0] = "intern"
	clone.Workflow.Approvers = append(clone.Workflow.Approvers, "ceo")
	clone.Workflow.RequiredApprovals = 1

	if master.Workflow.Approvers[0] != "legal-lead" || len(master.Workflow.Approvers) != 2 {
		t.Fatalf("approvers mutation leaked: %v", master.Workflow.Approvers)
	}
	if master.Workflow.RequiredApprovals != 2 {
		t.Fatalf("required approvals leaked: %d", master.Workflow.RequiredApprovals)
	}
}

func TestCloneCollectionsIsolated(t *testing.T) {
	master := sampleTemplate()
	clone := master.Clone()

	clone.Metadata["Cliente"] = "ACME"
	clone.RequiredFields[0] = "supplier"
	clone.Tags = append(clone.Tags, "draft")
	clone.Tags[0] = "template"

	if _, ok := master.Metadata["Cliente"]; ok {
		t.Fatal("metadata write leaked into source")
	}
	if master.RequiredFields[0] != "provider" {
		t.Fatalf("required fields mutation leaked: %v", master.RequiredFields)
	}
	if master.Tags[0] != "contract" || len(master.Tags) != 2 {
		t.Fatalf("tags mutation leaked: %v", master.Tags)
	}
}

func TestCloneReverseDirection(t *testing.T) {
	master := sampleTemplate()
	clone := master.Clone()

	// Isolation must hold both ways: mutating the source after cloning
	// cannot show through to an already-issued clone.
	master.Sections[1].Content = "changed after clone"
	master.Metadata["revision"] = "4"
	master.Style.PageMargins.Left = 1

	if clone.Sections[1].Content != "Services to be provided: {{services}}" {
		t.Fatalf("source mutation visible in clone: %q", clone.Sections[1].Content)
	}
	if clone.Metadata["revision"] != "3" {
		t.Fatalf("source metadata mutation visible in clone: %q", clone.Metadata["revision"])
	}
	if clone.Style.PageMargins.Left != 54 {
		t.Fatalf("source margin mutation visible in clone: %d", clone.Style.PageMargins.Left)
	}
}

func TestCloneOfCloneIndependent(t *testing.T) {
	master := sampleTemplate()
	first := master.Clone()
	second := first.Clone()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second-generation clone differs (-want +got):\n%s", diff)
	}

	first.Sections[0].Content = "mutated"
	first.Metadata["department"] = "sales"

	if second.Sections[0].Content == "mutated" {
		t.Fatal("mutating first clone affected second clone")
	}
	if second.Metadata["department"] != "legal" {
		t.Fatalf("metadata shared between sibling clones: %q", second.Metadata["department"])
	}
}

func TestCloneAbsentOptionalsStayAbsent(t *testing.T) {
	master := &DocumentTemplate{Title: "Memo", Category: "internal"}
	clone := master.Clone()

	if clone.Style != nil || clone.Workflow != nil {
		t.Fatalf("clone fabricated optional entities: style=%v workflow=%v", clone.Style, clone.Workflow)
	}
	if clone.Sections != nil || clone.Metadata != nil {
		t.Fatalf("clone fabricated collections: sections=%v metadata=%v", clone.Sections, clone.Metadata)
	}

	styleOnly := &DocumentTemplate{
		Title: "Letter",
		Style: &DocumentStyle{FontFamily: "Georgia", FontSize: 11},
	}
	cloned := styleOnly.Clone()
	if cloned.Style.PageMargins != nil {
		t.Fatalf("clone fabricated page margins: %v", cloned.Style.PageMargins)
	}
}

func TestCloneNilTemplate(t *testing.T) {
	var master *DocumentTemplate
	if clone := master.Clone(); clone != nil {
		t.Fatalf("nil template cloned to %v", clone)
	}
}

func TestSetMetadataAllocates(t *testing.T) {
	tmpl := &DocumentTemplate{Title: "Memo"}
	tmpl.SetMetadata("owner", "ops")
	if tmpl.Metadata["owner"] != "ops" {
		t.Fatalf("metadata not stored: %v", tmpl.Metadata)
	}
}
