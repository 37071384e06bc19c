// Package jsonh implements a reader for JSONH ("JSON for Humans"), a
// superset of JSON that adds quoteless strings, unquoted property
// names, multi-quoted strings with automatic dedent, trailing and
// omitted commas, line and block comments, and braceless top-level
// objects.
//
// # Tokenizing
//
// The Reader type implements a lexical tokenizer for JSONH. Construct
// a Reader from a byte slice or string and options, then call
// ReadElement to tokenize one top-level value at a time, or
// ReadTokens to tokenize everything that remains:
//
//	r := jsonh.NewReaderString(input, jsonh.ReaderOptions{})
//	toks, err := r.ReadElement()
//	if err != nil {
//	    log.Fatalf("tokenize failed: %v", err)
//	}
//	for _, t := range toks {
//	    log.Printf("token: %v %q", t.Kind, t.Value)
//	}
//
// Errors returned by a Reader have concrete type *SyntaxError and
// report the byte offset at which tokenizing stopped.
//
// # Building a tree
//
// The jsonh/ast subpackage consumes a Reader's token stream and folds
// it into a generic Value tree (Null, Bool, String, Number, *Object,
// *Array):
//
//	v, err := ast.ParseElement([]byte(input), jsonh.ReaderOptions{})
//	if err != nil {
//	    log.Fatalf("parse failed: %v", err)
//	}
//
// # Options
//
// ReaderOptions selects the grammar version (V1, V2, or Latest),
// whether a premature end of input inside a container synthesizes its
// closing bracket rather than failing, whether a single root element
// is required, and the maximum container nesting depth.
//
// # Input requirements
//
// Input must be well-formed UTF-8; tokenizing behavior on malformed
// runes is undefined. A leading byte-order mark is not stripped.
// Callers needing either should sanitize the input upstream.
package jsonh
