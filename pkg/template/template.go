package template

// DocumentTemplate aggregates the entities that make up a reusable document
// blueprint. Masters stored in a registry are never mutated; callers receive
// clones and own them outright, so every nested entity and collection element
// here must be exclusively owned by its template instance.
type DocumentTemplate struct {
	Title          string
	Category       string
	Sections       []Section
	Style          *DocumentStyle
	RequiredFields []string
	Metadata       map[string]string
	Workflow       *ApprovalWorkflow
	Tags           []string
}

// Clone creates a deep copy of the template tree to avoid accidental
// mutation. Scalars are copied by value; Style and Workflow are cloned when
// present and stay absent otherwise; every slice and the metadata map get
// fresh backing storage. The resulting graph shares no mutable state with
// the source at any depth.
//
// Any future field holding a mutable reference needs its own clone step
// here; the independence tests in clone_test.go exist to catch a forgotten
// one.
func (t *DocumentTemplate) Clone() *DocumentTemplate {
	if t == nil {
		return nil
	}

	cloned := *t
	if len(t.Sections) > 0 {
		cloned.Sections = make([]Section, len(t.Sections))
		for i, section := range t.Sections {
			cloned.Sections[i] = section.Clone()
		}
	}
	if t.Style != nil {
		style := t.Style.Clone()
		cloned.Style = &style
	}
	if len(t.RequiredFields) > 0 {
		cloned.RequiredFields = append([]string(nil), t.RequiredFields...)
	}
	if len(t.Metadata) > 0 {
		cloned.Metadata = make(map[string]string, len(t.Metadata))
		for k, v := range t.Metadata {
			cloned.Metadata[k] = v
		}
	}
	if t.Workflow != nil {
		workflow := t.Workflow.Clone()
		cloned.Workflow = &workflow
	}
	if len(t.Tags) > 0 {
		cloned.Tags = append([]string(nil), t.Tags...)
	}
	return &cloned
}

// SetMetadata stores a key/value pair, allocating the map on first use so
// zero-value templates and freshly cloned templates without metadata accept
// writes.
func (t *DocumentTemplate) SetMetadata(key, value string) {
	if t.Metadata == nil {
		t.Metadata = make(map[string]string)
	}
	t.Metadata[key] = value
}
