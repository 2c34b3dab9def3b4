package canonjson

import (
	"strconv"
	"unsafe"
)

// getString views a byte slice as a string without copying. Safe only
// when the string does not outlive the backing slice.
func getString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// numberChars are the bytes that may appear inside a numeric literal.
func isNumberChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E':
		return true
	}
	return false
}

// parseNumberLiteral decodes the numeric literal starting at data[pos],
// which the caller guarantees is a digit or '-'. It returns the value
// and the index just past the literal. The literal always decodes to a
// Float, even with no fractional part; callers needing exact integer
// semantics inspect the value themselves.
//
// Before parsing, the remainder of the buffer must contain at least one
// byte that may legally follow a number. This bounds how far a
// numeric-text parser can read past a literal in a buffer that is not
// null-terminated; it also means a bare number at the very end of the
// input, with no trailing delimiter or whitespace, is rejected.
func parseNumberLiteral(data []byte, pos int) (Float, int, *ParseError) {
	terminated := false
	for i := pos; i < len(data); i++ {
		switch data[i] {
		case ' ', '\n', '\r', '\t', ']', '}', ':', ',':
			terminated = true
		}
		if terminated {
			break
		}
	}
	if !terminated {
		return 0, 0, parseErrorAt("JSON syntax error", data, pos)
	}

	end := pos
	for end < len(data) && isNumberChar(data[end]) {
		end++
	}
	if end == pos {
		return 0, 0, parseErrorAt("JSON syntax error", data, pos)
	}
	f, err := strconv.ParseFloat(getString(data[pos:end]), 64)
	if err != nil {
		return 0, 0, parseErrorAt("JSON syntax error", data, pos)
	}
	return Float(f), end, nil
}

func appendInt(buf *Buffer, n int64) {
	var scratch [24]byte
	buf.Write(strconv.AppendInt(scratch[:0], n, 10))
}

func appendFloat(buf *Buffer, f float64) {
	var scratch [32]byte
	buf.Write(strconv.AppendFloat(scratch[:0], f, 'g', -1, 64))
}
