package template

// Cloneable is the contract every entity in the template tree satisfies: one
// method producing a same-type value whose reachable graph shares no mutable
// storage with the receiver's. Keeping the capability explicit and typed
// avoids reflective deep-copy and lets the compiler verify each entity.
type Cloneable[T any] interface {
	Clone() T
}

var (
	_ Cloneable[Margins]           = Margins{}
	_ Cloneable[DocumentStyle]     = DocumentStyle{}
	_ Cloneable[Section]           = Section{}
	_ Cloneable[ApprovalWorkflow]  = ApprovalWorkflow{}
	_ Cloneable[*DocumentTemplate] = (*DocumentTemplate)(nil)
)
