package canonjson

import "strconv"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	}
	return "Unknown"
}

// Value is a node in a parsed JSON document. The set of implementations
// is closed: Null, Bool, Integer, Float, String, Array and Object.
//
// The parser produces Float for every numeric literal; Integer exists
// for caller-built trees that need exact 64-bit semantics on output.
type Value interface {
	Kind() Kind
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON true/false literal.
type Bool bool

// Integer is a caller-supplied 64-bit signed integer.
type Integer int64

// Float is a JSON number.
type Float float64

// String is a JSON string holding valid UTF-8 text.
type String string

// Array is an ordered sequence of values. Order is preserved through a
// parse/serialize round trip.
type Array []Value

// Object maps string keys to values. Key order is not meaningful; the
// encoder always emits keys in sorted order. Duplicate keys during a
// parse overwrite earlier entries (last write wins).
type Object map[string]Value

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Integer) Kind() Kind { return KindInteger }
func (Float) Kind() Kind   { return KindFloat }
func (String) Kind() Kind  { return KindString }
func (Array) Kind() Kind   { return KindArray }
func (Object) Kind() Kind  { return KindObject }

// Keys returns the object's keys in map iteration order. Callers that
// need deterministic order must sort; the encoder does.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	return keys
}

// kindName tolerates nil for error messages.
func kindName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// AsInt64 coerces v to an int64. Integer converts exactly, Float
// truncates, String is parsed as numeric text (malformed text yields
// zero). Any other variant, or a nil value, fails with a *TypeError.
func AsInt64(v Value) (int64, error) {
	switch x := v.(type) {
	case Integer:
		return int64(x), nil
	case Float:
		return int64(x), nil
	case String:
		return textToInt64(string(x)), nil
	}
	return 0, &TypeError{Target: "integer", Got: kindName(v)}
}

// AsFloat64 coerces v to a float64 under the same rules as AsInt64.
func AsFloat64(v Value) (float64, error) {
	switch x := v.(type) {
	case Float:
		return float64(x), nil
	case Integer:
		return float64(x), nil
	case String:
		return textToFloat64(string(x)), nil
	}
	return 0, &TypeError{Target: "float", Got: kindName(v)}
}

// AsBool coerces v to a bool. Bool converts directly; Integer and
// Float by truthiness; String by numeric-text parse, non-zero → true.
func AsBool(v Value) (bool, error) {
	switch x := v.(type) {
	case Bool:
		return bool(x), nil
	case Integer:
		return x != 0, nil
	case Float:
		return x != 0, nil
	case String:
		return textToInt64(string(x)) != 0, nil
	}
	return false, &TypeError{Target: "bool", Got: kindName(v)}
}

func textToInt64(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return int64(textToFloat64(s))
}

func textToFloat64(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
