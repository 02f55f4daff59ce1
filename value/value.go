// Package value defines the runtime values of the language and the
// operators that combine them.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the dynamic type of a value.
type Kind int

// Value kinds.
const (
	KindNumber Kind = iota // int32
	KindFloat              // float32
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union over the language's literal kinds.
// The zero Value is Number(0).
type Value struct {
	kind Kind
	num  int32
	flt  float32
	str  string
	bl   bool
}

// Number creates an integer value.
func Number(v int32) Value { return Value{kind: KindNumber, num: v} }

// Float creates a float value.
func Float(v float32) Value { return Value{kind: KindFloat, flt: v} }

// String creates a string value.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Bool creates a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, bl: v} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// AsNumber returns the integer payload. Panics if not a number.
func (v Value) AsNumber() int32 {
	if v.kind != KindNumber {
		panic(fmt.Sprintf("AsNumber called on %s value", v.kind))
	}
	return v.num
}

// AsFloat returns the float payload. Panics if not a float.
func (v Value) AsFloat() float32 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("AsFloat called on %s value", v.kind))
	}
	return v.flt
}

// AsString returns the string payload. Panics if not a string.
func (v Value) AsString() string {
	if v.kind != KindString {
		panic(fmt.Sprintf("AsString called on %s value", v.kind))
	}
	return v.str
}

// AsBool returns the boolean payload. Panics if not a bool.
func (v Value) AsBool() bool {
	if v.kind != KindBool {
		panic(fmt.Sprintf("AsBool called on %s value", v.kind))
	}
	return v.bl
}

// numeric returns the value widened to float32 for mixed arithmetic.
func (v Value) numeric() (float32, bool) {
	switch v.kind {
	case KindNumber:
		return float32(v.num), true
	case KindFloat:
		return v.flt, true
	default:
		return 0, false
	}
}

// Truthy reports whether the value counts as true in a condition:
// non-zero numbers, non-empty strings and true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNumber:
		return v.num != 0
	case KindFloat:
		return v.flt != 0
	case KindString:
		return v.str != ""
	case KindBool:
		return v.bl
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.kind))
	}
}

// Equal reports structural equality: same kind and same content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindString:
		return v.str == other.str
	case KindBool:
		return v.bl == other.bl
	default:
		panic(fmt.Sprintf("unknown value kind %d", v.kind))
	}
}

// String returns the textual form printed by the interpreter.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat:
		return formatFloat(v.flt)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.bl)
	default:
		return "<unknown>"
	}
}

// GoString renders the value with its kind, used in dumps and test failures.
func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindFloat:
		return "Float(" + formatFloat(v.flt) + ")"
	case KindNumber:
		return "Number(" + v.String() + ")"
	default:
		return v.String()
	}
}

// formatFloat always keeps a fractional part so floats and numbers print
// differently: 2 -> "2.0", 2.5 -> "2.5".
func formatFloat(f float32) string {
	switch {
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	case math.IsNaN(float64(f)):
		return "NaN"
	}
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
