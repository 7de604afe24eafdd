// coerce.go
package loadenv

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	reInt   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	reFloat = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// Kind tags the type a Value was coerced to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Value is an environment value after coercion. Str always holds the
// original text; Int or Float is set according to Kind.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
}

// Coerce classifies s as an integer, a float or a plain string.
//
// Surrounding whitespace is ignored when matching numbers. An integer
// literal that does not fit in int64 is reported as a float.
func Coerce(s string) Value {
	v := Value{Kind: KindString, Str: s}
	trimmed := strings.TrimSpace(s)

	if reInt.MatchString(trimmed) {
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			v.Kind = KindInt
			v.Int = n
			return v
		}
	}

	if reFloat.MatchString(trimmed) {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			v.Kind = KindFloat
			v.Float = f
			return v
		}
	}

	return v
}

// Any returns the Go value for v: int64, float64 or string.
func (v Value) Any() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	default:
		return v.Str
	}
}

func (v Value) String() string {
	return v.Str
}

// MarshalYAML renders numbers as YAML numbers rather than quoted text.
func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}

// MarshalJSON renders numbers as JSON numbers rather than quoted text.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}
