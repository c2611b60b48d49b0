package tree

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"math"
	"strconv"

	treelearnErrors "github.com/YuminosukeSato/treelearn/pkg/errors"
)

// valueKind discriminates the closed set of atom kinds a Value can hold.
type valueKind uint8

const (
	numValue valueKind = iota
	strValue
)

// Value is an opaque attribute or class-label atom. It is a closed variant
// over numeric and textual kinds, compared by strict equality and usable as
// a map key. No ordering between atoms is assumed anywhere in the package;
// deterministic output (JSON, String) sorts only for stable presentation.
type Value struct {
	kind valueKind
	num  float64
	str  string
}

// Num returns a numeric atom.
//
// NaN must not be stored in a Value: it breaks equality and map lookup.
// Ingestion points (CSV parsing, matrix conversion) reject NaN before
// calling Num.
func Num(f float64) Value {
	return Value{kind: numValue, num: f}
}

// Str returns a textual atom.
func Str(s string) Value {
	return Value{kind: strValue, str: s}
}

// Float reports the numeric payload of v. The second result is false for
// textual atoms.
func (v Value) Float() (float64, bool) {
	if v.kind != numValue {
		return 0, false
	}
	return v.num, true
}

// Text reports the textual payload of v. The second result is false for
// numeric atoms.
func (v Value) Text() (string, bool) {
	if v.kind != strValue {
		return "", false
	}
	return v.str, true
}

// String renders the atom for display: numbers in their shortest form,
// strings verbatim.
func (v Value) String() string {
	if v.kind == numValue {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.str
}

// MarshalJSON encodes the atom as a native JSON scalar, so stored trees
// keep the number/string distinction without an extra tagging layer.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == numValue {
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return nil, treelearnErrors.NewValueError("Value.MarshalJSON", "NaN and Inf atoms are not representable in JSON")
		}
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// UnmarshalJSON decodes a JSON number into a numeric atom and a JSON string
// into a textual atom. Any other JSON value is rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return treelearnErrors.NewValueError("Value.UnmarshalJSON", "empty JSON value")
	}
	// json.Unmarshal treats null as a no-op for float64, so it must be
	// rejected before the numeric branch.
	if string(trimmed) == "null" {
		return treelearnErrors.NewValueError("Value.UnmarshalJSON", "atom must be a JSON number or string, got null")
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return treelearnErrors.Wrap(err, "treelearn: Value.UnmarshalJSON")
		}
		*v = Str(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return treelearnErrors.Wrap(err, "treelearn: Value.UnmarshalJSON: atom must be a JSON number or string")
	}
	*v = Num(f)
	return nil
}

// gobValue mirrors Value with exported fields for gob round-trips.
type gobValue struct {
	Kind uint8
	Num  float64
	Str  string
}

// GobEncode implements gob.GobEncoder so Values survive whole-model
// snapshots despite their unexported fields.
func (v Value) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(gobValue{Kind: uint8(v.kind), Num: v.num, Str: v.str}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (v *Value) GobDecode(data []byte) error {
	var gv gobValue
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&gv); err != nil {
		return err
	}
	v.kind = valueKind(gv.Kind)
	v.num = gv.Num
	v.str = gv.Str
	return nil
}

// lessValue imposes an arbitrary but stable order on atoms: numeric before
// textual, then by payload. Used only for deterministic presentation.
func lessValue(a, b Value) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	if a.kind == numValue {
		return a.num < b.num
	}
	return a.str < b.str
}
