package canonjson

import (
	"strconv"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// escapeTable maps each ASCII byte to its mandatory JSON escape, or ""
// for bytes copied through literally. Forward slash is deliberately
// left unescaped even though the grammar would permit escaping it.
var escapeTable [128]string

func init() {
	for c := 0; c < 0x20; c++ {
		escapeTable[c] = `\u00` + string(hexDigits[c>>4]) + string(hexDigits[c&0xf])
	}
	escapeTable['\b'] = `\b`
	escapeTable['\t'] = `\t`
	escapeTable['\n'] = `\n`
	escapeTable['\f'] = `\f`
	escapeTable['\r'] = `\r`
	escapeTable['\\'] = `\\`
	escapeTable['"'] = `\"`
}

// appendQuoted writes s to buf as a JSON string literal, quotes
// included. Bytes above 127 are copied through raw: upstream data is
// trusted to be valid UTF-8, including characters beyond the BMP.
func appendQuoted(buf *Buffer, s string) {
	buf.WriteByte('"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			continue
		}
		if esc := escapeTable[c]; esc != "" {
			if start < i {
				buf.WriteString(s[start:i])
			}
			buf.WriteString(esc)
			start = i + 1
		}
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
	buf.WriteByte('"')
}

// parseStringLiteral decodes the string literal whose opening quote is
// at data[pos]. It returns the decoded text and the index just past the
// closing quote.
func parseStringLiteral(data []byte, pos int) (String, int, *ParseError) {
	top := pos + 1
	end := -1
	sawBackslash := false

	// Locate the terminating quote, hopping over escape sequences so an
	// escaped quote can't end the scan early.
	for i := top; i < len(data); i++ {
		if data[i] == '"' {
			end = i
			break
		}
		if data[i] == '\\' {
			sawBackslash = true
			if i+1 < len(data) && data[i+1] == 'u' {
				i += 5
			} else {
				i++
			}
		}
	}
	if end < 0 {
		return "", 0, parseErrorAt("Unterminated string", data, pos)
	}

	if !sawBackslash {
		// Common case: no escapes, copy the span verbatim.
		span := data[top:end]
		if !utf8.Valid(span) {
			return "", 0, &ParseError{Msg: "Bad UTF-8 in JSON", Offset: top}
		}
		return String(span), end + 1, nil
	}

	s, perr := unescapeText(data, top, end)
	if perr != nil {
		return "", 0, perr
	}
	return s, end + 1, nil
}

// unescapeText expands the escapes in data[top:end], the contents of a
// string literal sans quotes. The result can never be longer than the
// input, so one allocation suffices.
func unescapeText(data []byte, top, end int) (String, *ParseError) {
	out := make([]byte, 0, end-top)
	for i := top; i < end; i++ {
		c := data[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= end {
			return "", parseErrorAt("Illegal escape", data, i-1)
		}
		switch data[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			if i+4 >= end {
				return "", parseErrorAt(`Invalid \u escape`, data, i-1)
			}
			hex := data[i+1 : i+5]
			cp, err := strconv.ParseUint(getString(hex), 16, 32)
			if err != nil {
				return "", parseErrorAt(`Invalid \u escape`, data, i-1)
			}
			if cp >= 0xD800 && cp <= 0xDFFF {
				// No surrogate combination is attempted; a lone high
				// surrogate fails even when a low one follows.
				return "", parseErrorAt("Surrogate pairs not supported", data, i-1)
			}
			out = utf8.AppendRune(out, rune(cp))
			i += 4
		default:
			return "", parseErrorAt("Illegal escape", data, i-1)
		}
	}
	if !utf8.Valid(out) {
		return "", &ParseError{Msg: "Bad UTF-8 in JSON", Offset: top}
	}
	return String(out), nil
}
