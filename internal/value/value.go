// Package value implements the dynamic runtime values of the object and
// scripting runtime. A Value is a tagged union, the tag being its Type.
package value

// Value is a dynamic runtime value. String returns the representation that
// is used whenever a Value has to become text, e.g. when it is substituted
// into a macro string or converted into a base.String.
type Value interface {
	Type() Type
	String() string
}
