package element

// FieldKind is the coercion target type of a scalar field. It is fixed by
// the field's default value in the variant constructor, never inferred
// from the document.
type FieldKind uint8

const (
	KindBool FieldKind = iota
	KindInt
	KindFloat
	KindString
)

// Field binds one attribute or tag name to a typed setter on a concrete
// variant instance. Exactly one setter matching Kind is non-nil.
type Field struct {
	Kind      FieldKind
	SetBool   func(bool)
	SetInt    func(int)
	SetFloat  func(float64)
	SetString func(string)
}

// FieldMap is a variant's scalar binding table, keyed by lower-cased field
// name. Attribute names and fallback child tags are lower-cased before
// lookup, so one table serves both binding paths.
type FieldMap map[string]Field

// Merge copies the entries of other into m and returns m. Variant tables
// are built by layering the embedded blocks' tables.
func (m FieldMap) Merge(other FieldMap) FieldMap {
	for k, f := range other {
		m[k] = f
	}
	return m
}

func BoolField(dst *bool) Field {
	return Field{Kind: KindBool, SetBool: func(v bool) { *dst = v }}
}

func IntField(dst *int) Field {
	return Field{Kind: KindInt, SetInt: func(v int) { *dst = v }}
}

func FloatField(dst *float64) Field {
	return Field{Kind: KindFloat, SetFloat: func(v float64) { *dst = v }}
}

func StringField(dst *string) Field {
	return Field{Kind: KindString, SetString: func(v string) { *dst = v }}
}
