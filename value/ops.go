package value

import (
	"math"
	"strings"
)

// MaxStringLen bounds the length in bytes of strings built by operators.
const MaxStringLen = 1 << 24

func tooLong(op string, n int64) error {
	return NewTypeError("string result of %s too long: %d bytes, limit is %d", op, n, MaxStringLen)
}

func typeError(op string, a, b Value) error {
	return NewTypeError("unsupported operand types for %s: %s and %s", op, a.kind, b.kind)
}

// arith applies an operator that only accepts numbers. Two numbers stay
// integral, any float operand promotes the result to float.
func arith(op string, a, b Value, intOp func(x, y int32) int32, floatOp func(x, y float32) float32) (Value, error) {
	if a.kind == KindNumber && b.kind == KindNumber {
		return Number(intOp(a.num, b.num)), nil
	}
	x, aOk := a.numeric()
	y, bOk := b.numeric()
	if !aOk || !bOk {
		return Value{}, typeError(op, a, b)
	}
	return Float(floatOp(x, y)), nil
}

// Add sums numbers or concatenates when either side is a string.
func Add(a, b Value) (Value, error) {
	if a.kind == KindString || b.kind == KindString {
		x, y := a.String(), b.String()
		if n := int64(len(x)) + int64(len(y)); n > MaxStringLen {
			return Value{}, tooLong("+", n)
		}
		return String(x + y), nil
	}
	return arith("+", a, b,
		func(x, y int32) int32 { return x + y },
		func(x, y float32) float32 { return x + y })
}

// Sub subtracts numbers.
func Sub(a, b Value) (Value, error) {
	return arith("-", a, b,
		func(x, y int32) int32 { return x - y },
		func(x, y float32) float32 { return x - y })
}

// Mul multiplies numbers, or repeats a string by a number.
func Mul(a, b Value) (Value, error) {
	switch {
	case a.kind == KindString && b.kind == KindNumber:
		return repeat(a.str, b.num)
	case a.kind == KindNumber && b.kind == KindString:
		return repeat(b.str, a.num)
	}
	return arith("*", a, b,
		func(x, y int32) int32 { return x * y },
		func(x, y float32) float32 { return x * y })
}

func repeat(s string, n int32) (Value, error) {
	if n <= 0 {
		return String(""), nil
	}
	if size := int64(len(s)) * int64(n); size > MaxStringLen {
		return Value{}, tooLong("*", size)
	}
	return String(strings.Repeat(s, int(n))), nil
}

// Div divides numbers. The result is always a float.
func Div(a, b Value) (Value, error) {
	x, aOk := a.numeric()
	y, bOk := b.numeric()
	if !aOk || !bOk {
		return Value{}, typeError("/", a, b)
	}
	if y == 0 {
		return Value{}, NewDivideByZeroError()
	}
	return Float(x / y), nil
}

// Mod returns the remainder of a division.
func Mod(a, b Value) (Value, error) {
	if a.kind == KindNumber && b.kind == KindNumber {
		if b.num == 0 {
			return Value{}, NewDivideByZeroError()
		}
		return Number(a.num % b.num), nil
	}
	x, aOk := a.numeric()
	y, bOk := b.numeric()
	if !aOk || !bOk {
		return Value{}, typeError("%", a, b)
	}
	if y == 0 {
		return Value{}, NewDivideByZeroError()
	}
	return Float(float32(math.Mod(float64(x), float64(y)))), nil
}

func compare(op string, a, b Value, test func(x, y float64) bool) (Value, error) {
	if a.kind == KindNumber && b.kind == KindNumber {
		return Bool(test(float64(a.num), float64(b.num))), nil
	}
	x, aOk := a.numeric()
	y, bOk := b.numeric()
	if !aOk || !bOk {
		return Value{}, typeError(op, a, b)
	}
	return Bool(test(float64(x), float64(y))), nil
}

// Greater compares two numbers.
func Greater(a, b Value) (Value, error) {
	return compare(">", a, b, func(x, y float64) bool { return x > y })
}

// Less compares two numbers.
func Less(a, b Value) (Value, error) {
	return compare("<", a, b, func(x, y float64) bool { return x < y })
}

// GreaterEqual is Greater or equal in magnitude, so 2 >= 2.0 holds.
func GreaterEqual(a, b Value) (Value, error) {
	return compare(">=", a, b, func(x, y float64) bool { return x > y || x == y })
}

// LessEqual is Less or equal in magnitude.
func LessEqual(a, b Value) (Value, error) {
	return compare("<=", a, b, func(x, y float64) bool { return x < y || x == y })
}

// Eq never fails: values of different kinds are simply unequal.
func Eq(a, b Value) Value { return Bool(a.Equal(b)) }

// NotEq is the negation of Eq.
func NotEq(a, b Value) Value { return Bool(!a.Equal(b)) }

// And combines the truthiness of both operands.
func And(a, b Value) Value { return Bool(a.Truthy() && b.Truthy()) }

// Or combines the truthiness of both operands.
func Or(a, b Value) Value { return Bool(a.Truthy() || b.Truthy()) }

// Not negates the truthiness of a.
func Not(a Value) Value { return Bool(!a.Truthy()) }

// Negate flips the sign of a number or float.
func Negate(a Value) (Value, error) {
	switch a.kind {
	case KindNumber:
		return Number(-a.num), nil
	case KindFloat:
		return Float(-a.flt), nil
	default:
		return Value{}, NewTypeError("unsupported operand type for unary -: %s", a.kind)
	}
}
