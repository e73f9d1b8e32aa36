// Package template defines the document template entities and the deep-clone
// contract that ties them together. Margins, DocumentStyle, Section, and
// ApprovalWorkflow are leaf value entities; DocumentTemplate composes them
// plus its section, field, metadata, and tag collections. Every entity
// exposes Clone, and the composite Clone builds a fully independent graph:
// mutating any field of a clone, at any nesting depth, never shows through
// to the source. Registries hand out clones of stored masters on this basis,
// so the isolation guarantee is the property the rest of the module stands
// on.
package template
