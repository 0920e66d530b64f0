package schema

import (
	"errors"
	"fmt"
)

// Separator joins path components of nested field names into column names.
const Separator = "."

// Kind identifies the fixed-width layout of a leaf field.
//
// Every Kind has a fixed byte size and accepts any bit pattern as a
// valid value. This is what makes raw reinterpretation of stream bytes
// safe: there are no enumerations or validity-constrained primitives
// in the layout vocabulary.
type Kind int

const (
	// Bool is a one-byte flag. Zero decodes as false, anything else as true.
	Bool Kind = iota
	U8
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

var kindSizes = [...]int{
	Bool: 1,
	U8:   1,
	I8:   1,
	U16:  2,
	I16:  2,
	U32:  4,
	I32:  4,
	U64:  8,
	I64:  8,
	F32:  4,
	F64:  8,
}

var kindNames = [...]string{
	Bool: "bool",
	U8:   "u8",
	I8:   "i8",
	U16:  "u16",
	I16:  "i16",
	U32:  "u32",
	I32:  "i32",
	U64:  "u64",
	I64:  "i64",
	F32:  "f32",
	F64:  "f64",
}

// Valid reports whether k is a declared leaf kind.
func (k Kind) Valid() bool {
	return k >= Bool && int(k) < len(kindSizes)
}

// Size returns the fixed byte size of the kind.
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}
	return kindSizes[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Field is one named node of the layout tree: either a leaf or a
// group. Build fields with Leaf and Group rather than struct literals;
// the constructors record which case was declared, so a group with
// zero children can never be mistaken for a leaf.
type Field struct {
	Name     string
	Kind     Kind    // meaningful only for leaves
	Children []Field // nil for leaves

	group bool
}

// Leaf declares a primitive fixed-width field.
func Leaf(name string, kind Kind) Field {
	return Field{Name: name, Kind: kind}
}

// Group declares a named composite of child fields. Declaration order
// of children is traversal order and therefore column order. An empty
// group is declarable but rejected by Validate.
func Group(name string, children ...Field) Field {
	return Field{Name: name, Children: children, group: true}
}

// IsLeaf reports whether the field was declared as a primitive leaf.
func (f Field) IsLeaf() bool {
	return !f.group
}

// Record is the root composite: the full fixed-size layout of one
// stream record. A Record is immutable after construction.
type Record struct {
	fields []Field
	leaves []LeafInfo
	size   int
}

// LeafInfo is one entry of the shared flattening traversal: the full
// dotted path of a leaf and its layout kind.
type LeafInfo struct {
	Path string
	Kind Kind
}

// New builds a Record from top-level fields and precomputes the shared
// leaf traversal. The field slice is the byte order of the stream.
func New(fields ...Field) *Record {
	r := &Record{fields: fields}
	walk("", fields, func(path string, f Field) {
		r.leaves = append(r.leaves, LeafInfo{Path: path, Kind: f.Kind})
		r.size += f.Kind.Size()
	})
	return r
}

// walk visits every leaf under fields in depth-first pre-order,
// passing the Separator-joined path from the root. This is the single
// traversal routine behind Leaves, Columns and ByteSize.
func walk(prefix string, fields []Field, fn func(path string, f Field)) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + Separator + f.Name
		}
		if f.IsLeaf() {
			fn(path, f)
			continue
		}
		walk(path, f.Children, fn)
	}
}

// Fields returns the top-level fields in declaration order.
func (r *Record) Fields() []Field {
	return r.fields
}

// Leaves returns the ordered flat leaf list. Header columns and row
// values are both generated index-for-index from this slice; callers
// must not reorder it.
func (r *Record) Leaves() []LeafInfo {
	return r.leaves
}

// Columns returns the flattened header: one dotted path per leaf, in
// traversal order.
func (r *Record) Columns() []string {
	cols := make([]string, len(r.leaves))
	for i, lf := range r.leaves {
		cols[i] = lf.Path
	}
	return cols
}

// ByteSize returns the fixed encoded size of one record in bytes.
func (r *Record) ByteSize() int {
	return r.size
}

// FieldSize returns the encoded size of a single field subtree.
func FieldSize(f Field) int {
	if f.IsLeaf() {
		return f.Kind.Size()
	}
	n := 0
	for _, c := range f.Children {
		n += FieldSize(c)
	}
	return n
}

// DeclarationError reports a schema declaration that cannot produce a
// well-formed header: duplicate sibling names, empty names or groups,
// or an unknown leaf kind.
type DeclarationError struct {
	Path    string // dotted path of the offending field ("" for root)
	Message string
}

func (e *DeclarationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: %s", e.Message)
	}
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Message)
}

// IsDeclarationError reports whether err is a DeclarationError.
// Uses errors.As to handle wrapped errors.
func IsDeclarationError(err error) bool {
	var de *DeclarationError
	return errors.As(err, &de)
}

// Validate checks the structural invariants that make flattening
// well-defined: sibling names distinct and non-empty at every level,
// groups non-empty, leaf kinds known. Column-name uniqueness across
// the whole record follows from sibling uniqueness by construction.
func (r *Record) Validate() error {
	return validateLevel("", r.fields)
}

func validateLevel(prefix string, fields []Field) error {
	if len(fields) == 0 {
		return &DeclarationError{Path: prefix, Message: "group has no fields"}
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + Separator + f.Name
		}
		if f.Name == "" {
			return &DeclarationError{Path: prefix, Message: "field with empty name"}
		}
		if _, dup := seen[f.Name]; dup {
			return &DeclarationError{Path: path, Message: "duplicate sibling name"}
		}
		seen[f.Name] = struct{}{}
		if f.IsLeaf() {
			if !f.Kind.Valid() {
				return &DeclarationError{Path: path, Message: fmt.Sprintf("unknown leaf kind %d", int(f.Kind))}
			}
			continue
		}
		if err := validateLevel(path, f.Children); err != nil {
			return err
		}
	}
	return nil
}
