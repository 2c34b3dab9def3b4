package canonjson

import (
	"strconv"
	"unicode/utf8"
)

// ParseError describes a failed parse. Snippet holds up to 32 bytes of
// the offending input, already escaped as a JSON string literal so it
// is safe to print regardless of what the input contained.
type ParseError struct {
	Msg     string
	Snippet string
	Offset  int
}

func (e *ParseError) Error() string {
	s := e.Msg + " at offset " + strconv.Itoa(e.Offset)
	if e.Snippet != "" {
		s += " near " + e.Snippet
	}
	return s
}

// EncodeError describes a failed serialization: an illegal top-level
// type, or exceeding the depth ceiling.
type EncodeError struct {
	Msg string
}

func (e *EncodeError) Error() string { return e.Msg }

// TypeError reports a coercion from an unsupported source variant.
type TypeError struct {
	Target string
	Got    string
}

func (e *TypeError) Error() string {
	return "cannot extract " + e.Target + " from value of type " + e.Got
}

const snippetMax = 32

// parseErrorAt builds a ParseError whose snippet covers the input from
// pos to the limit, truncated to snippetMax bytes on a code-point
// boundary and escaped through the codec's own string encoder.
func parseErrorAt(msg string, data []byte, pos int) *ParseError {
	if pos > len(data) {
		pos = len(data)
	}
	tail := data[pos:]
	if len(tail) > snippetMax {
		end := snippetMax
		for end > 0 && !utf8.RuneStart(tail[end]) {
			end--
		}
		tail = tail[:end]
	}
	buf := getBuffer()
	appendQuoted(buf, string(tail))
	snippet := string(buf.Bytes())
	putBuffer(buf)
	return &ParseError{Msg: msg, Snippet: snippet, Offset: pos}
}
