// Package rustdoc loads rustdoc JSON output and extracts documented functions from it.
package rustdoc

// Kind is the discriminant of an item's "inner" object.
type Kind string

const (
	KindFunction    Kind = "function"
	KindStruct      Kind = "struct"
	KindStructField Kind = "struct_field"
	KindEnum        Kind = "enum"
	KindVariant     Kind = "variant"
	KindTrait       Kind = "trait"
	KindImpl        Kind = "impl"
	KindModule      Kind = "module"
	KindConstant    Kind = "constant"
	KindStatic      Kind = "static"
	KindTypeAlias   Kind = "type_alias"
	KindUse         Kind = "use"
	KindMacro       Kind = "macro"
	KindAssocType   Kind = "assoc_type"
	KindAssocConst  Kind = "assoc_const"
	KindPrimitive   Kind = "primitive"
	// KindOther covers a missing inner, a non-object inner and any
	// discriminant this package does not know about.
	KindOther Kind = "other"
)

var knownKinds = map[Kind]struct{}{
	KindFunction:    {},
	KindStruct:      {},
	KindStructField: {},
	KindEnum:        {},
	KindVariant:     {},
	KindTrait:       {},
	KindImpl:        {},
	KindModule:      {},
	KindConstant:    {},
	KindStatic:      {},
	KindTypeAlias:   {},
	KindUse:         {},
	KindMacro:       {},
	KindAssocType:   {},
	KindAssocConst:  {},
	KindPrimitive:   {},
}

// Item is a single entry of the rustdoc index.
type Item struct {
	ID         string
	CrateID    int64
	Name       *string
	Docs       *string
	Visibility string
	Kind       Kind

	// fields present in the source with a type we can't use
	malformed map[string]string
}

// Documented reports whether the item carries non-empty docs.
func (it Item) Documented() bool {
	return it.Docs != nil && *it.Docs != ""
}

// Function is a documented function ready for stub generation.
type Function struct {
	ID   string
	Name string
	Docs string
}

// Options narrows extraction beyond the function/docs rule.
type Options struct {
	// LocalOnly keeps items of the documented crate (crate_id 0).
	LocalOnly bool
	// PublicOnly keeps items whose visibility is "public".
	PublicOnly bool
}
