package template

// Margins captures page margins in points. All fields are plain values, so
// cloning is a struct copy.
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Clone returns an independent copy of the margins.
func (m Margins) Clone() Margins {
	return m
}

// DocumentStyle describes the visual treatment applied to a document.
// PageMargins is optional; a nil value means no margins were configured.
type DocumentStyle struct {
	FontFamily  string
	FontSize    int
	HeaderColor string
	LogoURL     string
	PageMargins *Margins
}

// Clone creates a deep copy of the style. A configured PageMargins is
// duplicated so the clone owns its own instance; absence is preserved.
func (s DocumentStyle) Clone() DocumentStyle {
	cloned := s
	if s.PageMargins != nil {
		margins := s.PageMargins.Clone()
		cloned.PageMargins = &margins
	}
	return cloned
}

// Section is a named block of template content. Placeholders keeps the
// substitution order callers rely on when filling the section in.
type Section struct {
	Name         string
	Content      string
	Editable     bool
	Placeholders []string
}

// Clone creates a deep copy of the section, giving the clone its own
// placeholder slice.
func (s Section) Clone() Section {
	cloned := s
	if len(s.Placeholders) > 0 {
		cloned.Placeholders = append([]string(nil), s.Placeholders...)
	}
	return cloned
}

// ApprovalWorkflow describes who must sign off on a document produced from a
// template. Approvers is ordered by priority and may repeat a name; whether
// RequiredApprovals is satisfiable against it is left to validation layers.
type ApprovalWorkflow struct {
	Approvers         []string
	RequiredApprovals int
	TimeoutDays       int
}

// Clone creates a deep copy of the workflow with a fresh approvers slice.
func (w ApprovalWorkflow) Clone() ApprovalWorkflow {
	cloned := w
	if len(w.Approvers) > 0 {
		cloned.Approvers = append([]string(nil), w.Approvers...)
	}
	return cloned
}
