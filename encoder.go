package canonjson

import (
	"io"
	"sort"
)

// Indentation: two spaces per level.
const indentation = "  "

// maxDepth bounds encoder recursion. Trees built by the parser cannot
// be cyclic, so this matters mostly for caller-built structures.
const maxDepth = 200

// Encoder serializes value trees to canonical JSON text on a writer.
// A lenient encoder additionally accepts scalar values at the top
// level; that is intended for test harnesses, configure it once before
// encoding.
type Encoder struct {
	w       io.Writer
	lenient bool
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// SetLenient relaxes the Object-or-Array top-level restriction. No
// other check is affected.
func (e *Encoder) SetLenient(on bool) {
	e.lenient = on
}

func (e *Encoder) Encode(v Value) error {
	data, err := serialize(v, e.lenient)
	if err != nil {
		return err
	}
	_, err = e.w.Write(data)
	return err
}

func serialize(v Value, lenient bool) ([]byte, error) {
	// Only objects and arrays may appear at the top level unless
	// leniency was requested.
	if !lenient && !isContainer(v) {
		return nil, &EncodeError{Msg: "Illegal top-level object type: " + kindName(v)}
	}

	buf := getBufferSize(1024)
	defer putBuffer(buf)
	if err := encodeValue(buf, v, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func isContainer(v Value) bool {
	if v == nil {
		return false
	}
	k := v.Kind()
	return k == KindArray || k == KindObject
}

func catIndent(buf *Buffer, depth int) {
	for ; depth > 0; depth-- {
		buf.WriteString(indentation)
	}
}

func encodeValue(buf *Buffer, v Value, depth int) error {
	// Guard against runaway recursion in self-referencing trees.
	if depth >= maxDepth {
		return &EncodeError{Msg: "Exceeded max depth of 200"}
	}

	switch x := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Bool:
		if x {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Integer:
		appendInt(buf, int64(x))
	case Float:
		appendFloat(buf, float64(x))
	case String:
		appendQuoted(buf, string(x))
	case Array:
		return encodeArray(buf, x, depth)
	case Object:
		return encodeObject(buf, x, depth)
	}
	return nil
}

func encodeArray(buf *Buffer, arr Array, depth int) error {
	if len(arr) == 0 {
		// Empty array goes on a single line.
		buf.WriteString("[]")
		return nil
	}
	if len(arr) == 1 && !isContainer(arr[0]) {
		// An array holding a single scalar stays on one line.
		buf.WriteByte('[')
		if err := encodeValue(buf, arr[0], depth+1); err != nil {
			return err
		}
		buf.WriteByte(']')
		return nil
	}

	buf.WriteByte('[')
	for i, elem := range arr {
		buf.WriteByte('\n')
		catIndent(buf, depth+1)
		if err := encodeValue(buf, elem, depth+1); err != nil {
			return err
		}
		if i+1 < len(arr) {
			buf.WriteByte(',')
		}
	}
	buf.WriteByte('\n')
	catIndent(buf, depth)
	buf.WriteByte(']')
	return nil
}

func encodeObject(buf *Buffer, obj Object, depth int) error {
	if len(obj) == 0 {
		buf.WriteString("{}")
		return nil
	}

	// Sorted keys make the output deterministic and diff-stable
	// regardless of insertion order.
	keys := obj.Keys()
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, key := range keys {
		buf.WriteByte('\n')
		catIndent(buf, depth+1)
		appendQuoted(buf, key)
		buf.WriteString(": ")
		if err := encodeValue(buf, obj[key], depth+1); err != nil {
			return err
		}
		if i+1 < len(keys) {
			buf.WriteByte(',')
		}
	}
	buf.WriteByte('\n')
	catIndent(buf, depth)
	buf.WriteByte('}')
	return nil
}
