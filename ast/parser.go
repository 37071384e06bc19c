package ast

import (
	"errors"
	"fmt"

	jsonh "github.com/jsonh-org/JsonhGo"
)

// ParseElement reads and builds a single top-level JSONH element from
// src. If opts.ParseSingleElement is set, any non-comment content
// left over after the element is a failure
// (jsonh.ErrExpectedEndOfElements); otherwise trailing content is
// ignored.
func ParseElement(src []byte, opts jsonh.ReaderOptions) (Value, error) {
	r := jsonh.NewReader(src, opts)
	toks, err := r.ReadElement()
	if err != nil {
		return nil, err
	}
	if toks == nil {
		return nil, errors.New("jsonh: no element found")
	}
	v, err := build(toks, opts)
	if err != nil {
		return nil, err
	}
	if opts.ParseSingleElement {
		rest, err := r.ReadElement()
		if err != nil {
			return nil, err
		}
		if rest != nil {
			return nil, jsonh.ErrExpectedEndOfElements
		}
	}
	return v, nil
}

// ParseAll reads and builds every top-level sibling element in src.
func ParseAll(src []byte, opts jsonh.ReaderOptions) ([]Value, error) {
	r := jsonh.NewReader(src, opts)
	var vs []Value
	for {
		toks, err := r.ReadElement()
		if err != nil {
			return vs, err
		}
		if toks == nil {
			return vs, nil
		}
		v, err := build(toks, opts)
		if err != nil {
			return vs, err
		}
		vs = append(vs, v)
	}
}

// builder folds a flat token sequence into a Value by maintaining a
// stack of partially built containers and a pending property-name
// slot.
type builder struct {
	stk     []Value
	pending []string // pending[len(stk)-1] is the name awaiting a value in the top object, "" if none or top is an array
	depth   int
	maxDep  int
}

func build(toks []jsonh.Token, opts jsonh.ReaderOptions) (Value, error) {
	b := &builder{maxDep: opts.MaxDepth}
	if b.maxDep == 0 {
		b.maxDep = jsonh.DefaultMaxDepth
	}
	for _, t := range toks {
		if err := b.step(t); err != nil {
			return nil, err
		}
	}
	if len(b.stk) != 1 {
		return nil, errors.New("jsonh: incomplete element")
	}
	return b.stk[0], nil
}

func (b *builder) step(t jsonh.Token) error {
	switch t.Kind {
	case jsonh.Comment:
		return nil
	case jsonh.StartObject:
		b.push(&Object{})
		b.pending = append(b.pending, "")
		b.depth++
		if b.maxDep >= 0 && b.depth > b.maxDep {
			return jsonh.ErrExceededMaxDepth
		}
		return nil
	case jsonh.EndObject:
		b.pending = b.pending[:len(b.pending)-1]
		b.depth--
		return b.reduce()
	case jsonh.StartArray:
		b.push(&Array{})
		b.pending = append(b.pending, "")
		b.depth++
		if b.maxDep >= 0 && b.depth > b.maxDep {
			return jsonh.ErrExceededMaxDepth
		}
		return nil
	case jsonh.EndArray:
		b.pending = b.pending[:len(b.pending)-1]
		b.depth--
		return b.reduce()
	case jsonh.PropertyName:
		if len(b.stk) == 0 {
			return errors.New("jsonh: property name outside an object")
		}
		b.pending[len(b.pending)-1] = t.Value
		return nil
	case jsonh.String:
		return b.submit(String{Value: t.Value})
	case jsonh.Number:
		if _, err := jsonh.ParseNumber(t.Value); err != nil {
			return err
		}
		return b.submit(Number{Text: t.Value})
	case jsonh.TrueBool:
		return b.submit(Bool{Value: true, Text: t.Value})
	case jsonh.FalseBool:
		return b.submit(Bool{Value: false, Text: t.Value})
	case jsonh.Null:
		return b.submit(Null{Text: t.Value})
	default:
		return fmt.Errorf("jsonh: unexpected token %v", t.Kind)
	}
}

func (b *builder) push(v Value) { b.stk = append(b.stk, v) }

// submit delivers a fully-formed value (a primitive, or a container
// that has just been popped) into whatever sits beneath it on the
// stack: as an object property's value, as the next array element,
// or, if the stack is empty, as the finished root value.
func (b *builder) submit(v Value) error {
	if len(b.stk) == 0 {
		b.push(v)
		return nil
	}
	switch top := b.stk[len(b.stk)-1].(type) {
	case *Object:
		name := b.pending[len(b.pending)-1]
		top.Properties = append(top.Properties, Property{Name: name, Value: v})
		b.pending[len(b.pending)-1] = ""
		return nil
	case *Array:
		top.Values = append(top.Values, v)
		return nil
	default:
		return errors.New("jsonh: value outside any container")
	}
}

// reduce pops the just-closed container and submits it into its
// parent, or leaves it as the sole stack entry if it is the root.
func (b *builder) reduce() error {
	v := b.stk[len(b.stk)-1]
	b.stk = b.stk[:len(b.stk)-1]
	if len(b.stk) == 0 {
		b.stk = append(b.stk, v)
		return nil
	}
	return b.submit(v)
}
