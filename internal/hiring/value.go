package hiring

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueScalar
	ValueSequence
	ValueMapping
)

// Value is a decoded document node. It is one of Empty, Scalar, Sequence or
// Mapping; booleans and nulls decode to Empty.
type Value struct {
	kind   ValueKind
	scalar Scalar
	items  []Value
	fields []Field
}

// Field is one key/value pair of a Mapping, kept in source order.
type Field struct {
	Key   string
	Value Value
}

// Scalar is a string or a number.
type Scalar struct {
	text    string
	number  float64
	numeric bool
}

// Empty returns the Empty value.
func Empty() Value { return Value{} }

// String returns a string Scalar value.
func String(s string) Value {
	return Value{kind: ValueScalar, scalar: Scalar{text: s}}
}

// Number returns a numeric Scalar value.
func Number(n float64) Value {
	return Value{kind: ValueScalar, scalar: Scalar{number: n, numeric: true}}
}

// Sequence returns a Sequence value holding items in order.
func Sequence(items ...Value) Value {
	return Value{kind: ValueSequence, items: items}
}

// Mapping returns a Mapping value holding fields in order.
func Mapping(fields ...Field) Value {
	return Value{kind: ValueMapping, fields: fields}
}

// F is shorthand for building a Field.
func F(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// Kind reports the variant.
func (v Value) Kind() ValueKind { return v.kind }

// Scalar returns the scalar payload and whether v is a Scalar.
func (v Value) Scalar() (Scalar, bool) {
	return v.scalar, v.kind == ValueScalar
}

// Items returns the elements of a Sequence, nil otherwise.
func (v Value) Items() []Value {
	if v.kind != ValueSequence {
		return nil
	}
	return v.items
}

// Fields returns the fields of a Mapping, nil otherwise.
func (v Value) Fields() []Field {
	if v.kind != ValueMapping {
		return nil
	}
	return v.fields
}

// Get returns the first field named key of a Mapping. Missing keys and
// non-mapping values yield Empty.
func (v Value) Get(key string) Value {
	for _, f := range v.Fields() {
		if f.Key == key {
			return f.Value
		}
	}
	return Value{}
}

// Elements returns the children of a collection: the items of a Sequence or
// the field values of a Mapping, in order.
func (v Value) Elements() []Value {
	switch v.kind {
	case ValueSequence:
		return v.items
	case ValueMapping:
		out := make([]Value, len(v.fields))
		for i, f := range v.fields {
			out[i] = f.Value
		}
		return out
	default:
		return nil
	}
}

// Text returns the scalar rendered as text, or "" for non-scalars.
func (v Value) Text() string {
	if v.kind != ValueScalar {
		return ""
	}
	return v.scalar.String()
}

// Truthy reports whether the value would pass a plain truthiness check:
// non-empty strings, non-zero numbers, and any collection.
func (v Value) Truthy() bool {
	switch v.kind {
	case ValueScalar:
		return v.scalar.Truthy()
	case ValueSequence, ValueMapping:
		return true
	default:
		return false
	}
}

// IsNumber reports whether the scalar is numeric.
func (s Scalar) IsNumber() bool { return s.numeric }

// Float returns the numeric payload.
func (s Scalar) Float() float64 { return s.number }

// Truthy reports whether the scalar is a non-empty string or non-zero number.
func (s Scalar) Truthy() bool {
	if s.numeric {
		return s.number != 0 && !math.IsNaN(s.number)
	}
	return s.text != ""
}

// String renders the scalar. Integral numbers print without a fraction and
// magnitudes from 1e21 use exponent form.
func (s Scalar) String() string {
	if !s.numeric {
		return s.text
	}
	return formatNumber(s.number)
}

// Grouped renders numbers with thousands separators; strings are returned as is.
func (s Scalar) Grouped() string {
	if !s.numeric {
		return s.text
	}
	if math.Abs(s.number) >= 1e21 || math.IsNaN(s.number) || math.IsInf(s.number, 0) {
		return formatNumber(s.number)
	}
	rounded := math.Round(s.number*1000) / 1000
	if rounded == math.Trunc(rounded) {
		return humanize.Comma(int64(rounded))
	}
	return humanize.Commaf(rounded)
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		out := strconv.FormatFloat(n, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(out, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
