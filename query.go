package jsonh

// FindPropertyValue advances the reader through the object at the
// current position until a top-level (depth 1) property with the
// given name has been read, leaving the cursor immediately after its
// ":" and reporting success. It reports false at the end of the
// object, at end of input, or on any tokenize error.
//
// The object may be braced or braceless. Tokens scanned along the way
// are discarded; the caller typically follows a successful find with
// ReadElement to tokenize the property's value.
func (r *Reader) FindPropertyValue(name string) (found bool) {
	defer func() {
		if v := recover(); v != nil {
			if _, ok := v.(failure); !ok {
				panic(v)
			}
			found = false
		}
	}()
	save := len(r.toks)
	defer func() { r.toks = r.toks[:save] }()

	r.skipTrivia()
	braced := r.rr.ReadOne('{')
	for {
		r.skipTrivia()
		ch, ok := r.rr.Peek()
		if !ok || (braced && ch == '}') {
			return false
		}
		pname := r.readPropertyName()
		r.skipTrivia()
		if !r.rr.ReadOne(':') {
			r.fail(ErrExpectedColon)
		}
		if pname == name {
			return true
		}
		r.skipTrivia()
		r.parseElement()
		r.skipTrivia()
		r.rr.ReadOne(',')
	}
}

// PropertyValueTokens locates a top-level (depth 1) property with the
// given name in an already-materialized token sequence, as returned
// by ReadElement, and returns the token sub-sequence of its value: a
// single token for a primitive, or the full balanced container run.
// It reports ok=false if no such property exists.
func PropertyValueTokens(toks []Token, name string) ([]Token, bool) {
	depth := 0
	for i := 0; i < len(toks); i++ {
		switch toks[i].Kind {
		case StartObject, StartArray:
			depth++
		case EndObject, EndArray:
			depth--
		case PropertyName:
			if depth == 1 && toks[i].Value == name {
				return valueSpan(toks, i+1)
			}
		}
	}
	return nil, false
}

// valueSpan returns the token sub-sequence starting at i that forms
// one complete value: either a single primitive token, or a balanced
// container run. Comment tokens preceding the value are skipped.
func valueSpan(toks []Token, i int) ([]Token, bool) {
	for i < len(toks) && toks[i].Kind == Comment {
		i++
	}
	if i >= len(toks) {
		return nil, false
	}
	switch toks[i].Kind {
	case StartObject, StartArray:
		depth := 0
		for j := i; j < len(toks); j++ {
			switch toks[j].Kind {
			case StartObject, StartArray:
				depth++
			case EndObject, EndArray:
				depth--
				if depth == 0 {
					return toks[i : j+1], true
				}
			}
		}
		return nil, false
	default:
		return toks[i : i+1], true
	}
}
