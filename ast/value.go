// Package ast defines a generic JSON value tree (null, bool, string,
// 64-bit real, insertion-ordered object, and array) and a tree
// builder that folds a JSONH token stream into it.
package ast

import jsonh "github.com/jsonh-org/JsonhGo"

// A Value is an arbitrary JSONH value: Null, Bool, String, Number,
// *Object, or *Array.
type Value interface{ isValue() }

// Null represents the JSONH "null" literal. Text preserves the exact
// literal text of the token it was built from, for round-tripping.
type Null struct{ Text string }

func (Null) isValue() {}

// Bool represents a "true"/"false" literal.
type Bool struct {
	Value bool
	Text  string
}

func (Bool) isValue() {}

// String represents a quoted, quoteless, or verbatim string value,
// already decoded (escapes resolved, dedent applied for multi-quoted
// strings).
type String struct{ Value string }

func (String) isValue() {}

// Number represents a numeric literal, carrying its original lexical
// text (including base prefix and digit separators) for
// round-tripping.
type Number struct{ Text string }

func (Number) isValue() {}

// Float64 returns the value of n as a 64-bit real. It panics if Text
// is not a well-formed numeric literal; the tree builder only
// constructs Numbers from text it has already validated.
func (n Number) Float64() float64 {
	v, err := jsonh.ParseNumber(n.Text)
	if err != nil {
		panic(err)
	}
	return v
}

// A Property is a single name/value pair belonging to an Object.
type Property struct {
	Name  string
	Value Value
}

// An Object is an insertion-ordered collection of properties,
// corresponding to a StartObject/EndObject token run (braced or
// braceless).
type Object struct {
	Properties []Property
}

func (*Object) isValue() {}

// Find returns the value of the first property of o with the given
// name, and whether one was found.
func (o *Object) Find(name string) (Value, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// An Array is an ordered sequence of values, corresponding to a
// StartArray/EndArray token run.
type Array struct {
	Values []Value
}

func (*Array) isValue() {}
