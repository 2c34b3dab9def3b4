package canonjson

// parser consumes the lexer's token stream and builds a value tree
// following the JSON grammar: a value is exactly one of object, array,
// string, number, true, false or null; an object is {} or a
// comma-separated list of "key": value pairs; an array is [] or a
// comma-separated list of values. Any malformed sequence aborts the
// parse immediately, discarding whatever was built so far.
type parser struct {
	lex lexer
}

func parseDocument(data []byte) (Value, *ParseError) {
	p := parser{lex: lexer{data: data}}
	tok, val, perr := p.lex.next()
	if perr != nil {
		return nil, perr
	}
	if tok == tokenEOF {
		return nil, p.syntaxError()
	}
	v, perr := p.parseValue(tok, val)
	if perr != nil {
		return nil, perr
	}
	tok, _, perr = p.lex.next()
	if perr != nil {
		return nil, perr
	}
	if tok != tokenEOF {
		// Exactly one top-level value is permitted.
		return nil, p.syntaxError()
	}
	return v, nil
}

func (p *parser) parseValue(tok int, val Value) (Value, *ParseError) {
	switch tok {
	case tokenString, tokenNumber, tokenTrue, tokenFalse, tokenNull:
		return val, nil
	case tokenLeftCurly:
		return p.parseObject()
	case tokenLeftSquare:
		return p.parseArray()
	}
	return nil, p.syntaxError()
}

func (p *parser) parseObject() (Value, *ParseError) {
	obj := Object{}
	tok, val, perr := p.lex.next()
	if perr != nil {
		return nil, perr
	}
	if tok == tokenRightCurly {
		return obj, nil
	}
	for {
		if tok != tokenString {
			return nil, p.syntaxError()
		}
		key := string(val.(String))

		tok, _, perr = p.lex.next()
		if perr != nil {
			return nil, perr
		}
		if tok != tokenColon {
			return nil, p.syntaxError()
		}

		tok, val, perr = p.lex.next()
		if perr != nil {
			return nil, perr
		}
		v, perr := p.parseValue(tok, val)
		if perr != nil {
			return nil, perr
		}
		// Last write wins for duplicate keys.
		obj[key] = v

		tok, _, perr = p.lex.next()
		if perr != nil {
			return nil, perr
		}
		switch tok {
		case tokenRightCurly:
			return obj, nil
		case tokenComma:
			tok, val, perr = p.lex.next()
			if perr != nil {
				return nil, perr
			}
		default:
			return nil, p.syntaxError()
		}
	}
}

func (p *parser) parseArray() (Value, *ParseError) {
	arr := Array{}
	tok, val, perr := p.lex.next()
	if perr != nil {
		return nil, perr
	}
	if tok == tokenRightSquare {
		return arr, nil
	}
	for {
		v, perr := p.parseValue(tok, val)
		if perr != nil {
			return nil, perr
		}
		arr = append(arr, v)

		tok, _, perr = p.lex.next()
		if perr != nil {
			return nil, perr
		}
		switch tok {
		case tokenRightSquare:
			return arr, nil
		case tokenComma:
			tok, val, perr = p.lex.next()
			if perr != nil {
				return nil, perr
			}
		default:
			return nil, p.syntaxError()
		}
	}
}

func (p *parser) syntaxError() *ParseError {
	return parseErrorAt("JSON syntax error", p.lex.data, p.lex.start)
}
