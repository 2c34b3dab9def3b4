// Package canonjson is a JSON codec for persisting structured index
// metadata such as schema descriptions and segment manifests. Parsing
// builds a Value tree from raw UTF-8 bytes; serializing produces a
// single canonical text form (sorted object keys, two-space indents,
// inline single-scalar arrays, trailing newline) so that persisted
// files are byte-stable across runs and cleanly diffable.
//
// The codec is synchronous and holds no global state: every operation
// returns its result or error directly, so concurrent use on distinct
// values is safe.
package canonjson

// Parse decodes one JSON document from raw UTF-8 bytes into a Value
// tree. Numeric literals always decode to Float. On failure the
// returned error is a *ParseError carrying the byte offset and an
// escaped snippet of the offending input.
func Parse(data []byte) (Value, error) {
	v, perr := parseDocument(data)
	if perr != nil {
		return nil, perr
	}
	return v, nil
}

// Serialize encodes a Value tree as canonical JSON text. The root must
// be an Object or an Array; use an Encoder with SetLenient to bypass
// that one check.
func Serialize(v Value) ([]byte, error) {
	return serialize(v, false)
}
