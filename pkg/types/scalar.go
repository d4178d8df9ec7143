package types

import (
	"encoding/json"
	"fmt"
)

// ScalarKind identifies which JSON scalar a Scalar holds.
type ScalarKind int

// Scalar kinds.
const (
	KindNull ScalarKind = iota
	KindString
	KindNumber
	KindBool
)

// Scalar is a closed variant over the JSON scalar types: string, number,
// boolean, or null. It is used for preference values so that the API stays
// JSON-compatible without resorting to untyped values. Objects and arrays
// are rejected on unmarshal.
type Scalar struct {
	kind ScalarKind
	str  string
	num  float64
	b    bool
}

// Null returns the null scalar.
func Null() Scalar { return Scalar{kind: KindNull} }

// String returns a string scalar.
func String(s string) Scalar { return Scalar{kind: KindString, str: s} }

// Number returns a numeric scalar.
func Number(n float64) Scalar { return Scalar{kind: KindNumber, num: n} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

// Kind reports which variant the scalar holds.
func (s Scalar) Kind() ScalarKind { return s.kind }

// Value returns the underlying Go value: string, float64, bool, or nil.
func (s Scalar) Value() any {
	switch s.kind {
	case KindString:
		return s.str
	case KindNumber:
		return s.num
	case KindBool:
		return s.b
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value())
}

// UnmarshalJSON implements json.Unmarshaler. Objects and arrays are not
// valid scalar values and produce an error.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*s = Null()
	case string:
		*s = String(val)
	case float64:
		*s = Number(val)
	case bool:
		*s = Bool(val)
	default:
		return fmt.Errorf("preference value must be a string, number, boolean, or null, got %T", v)
	}
	return nil
}

// Preferences is a mapping from preference key to scalar value.
type Preferences map[string]Scalar

// Clone returns a copy of the preferences map. A nil receiver yields an
// empty, non-nil map.
func (p Preferences) Clone() Preferences {
	out := make(Preferences, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies the given keys into the map: new keys are added, existing
// keys are overwritten, untouched keys are preserved.
func (p Preferences) Merge(updates Preferences) {
	for k, v := range updates {
		p[k] = v
	}
}
