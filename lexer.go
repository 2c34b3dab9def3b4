package canonjson

// Token kinds produced by the lexer.
const (
	tokenEOF = iota
	tokenLeftSquare
	tokenRightSquare
	tokenLeftCurly
	tokenRightCurly
	tokenColon
	tokenComma
	tokenString
	tokenNumber
	tokenTrue
	tokenFalse
	tokenNull
)

// lexer walks a byte buffer bounded by [0, len(data)) one token at a
// time. The buffer is not assumed to be null-terminated or otherwise
// delimited; every scan is bounds-checked against len(data).
type lexer struct {
	data  []byte
	pos   int
	start int // offset of the most recently scanned token
}

// next identifies the next significant token, returning its kind and,
// for literal tokens, the decoded payload.
func (l *lexer) next() (int, Value, *ParseError) {
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case ' ', '\n', '\r', '\t':
			// The JSON RFC defines insignificant whitespace as exactly
			// these four bytes.
			l.pos++
			continue
		}
		break
	}
	l.start = l.pos
	if l.pos >= len(l.data) {
		return tokenEOF, nil, nil
	}

	switch c := l.data[l.pos]; c {
	case '[':
		l.pos++
		return tokenLeftSquare, nil, nil
	case ']':
		l.pos++
		return tokenRightSquare, nil, nil
	case '{':
		l.pos++
		return tokenLeftCurly, nil, nil
	case '}':
		l.pos++
		return tokenRightCurly, nil, nil
	case ':':
		l.pos++
		return tokenColon, nil, nil
	case ',':
		l.pos++
		return tokenComma, nil, nil
	case '"':
		s, next, perr := parseStringLiteral(l.data, l.pos)
		if perr != nil {
			return tokenEOF, nil, perr
		}
		l.pos = next
		return tokenString, s, nil
	case 'n':
		if l.checkKeyword("null") {
			return tokenNull, Null{}, nil
		}
	case 't':
		if l.checkKeyword("true") {
			return tokenTrue, Bool(true), nil
		}
	case 'f':
		if l.checkKeyword("false") {
			return tokenFalse, Bool(false), nil
		}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-':
		// Note no '+', which the JSON grammar does not allow.
		f, next, perr := parseNumberLiteral(l.data, l.pos)
		if perr != nil {
			return tokenEOF, nil, perr
		}
		l.pos = next
		return tokenNumber, f, nil
	}
	return tokenEOF, nil, parseErrorAt("JSON syntax error", l.data, l.pos)
}

// checkKeyword consumes keyword at the cursor only when it ends on a
// word boundary, so "null" matches but the first four bytes of
// "nullify" do not.
func (l *lexer) checkKeyword(keyword string) bool {
	end := l.pos + len(keyword)
	if end > len(l.data) {
		return false
	}
	if getString(l.data[l.pos:end]) != keyword {
		return false
	}
	if end < len(l.data) && isIdentByte(l.data[end]) {
		return false
	}
	l.pos = end
	return true
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
