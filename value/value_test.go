package value

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{Number(42), "42"},
		{Number(-7), "-7"},
		{Float(2), "2.0"},
		{Float(2.5), "2.5"},
		{Float(-0.25), "-0.25"},
		{String("hi there"), "hi there"},
		{Bool(true), "true"},
		{Bool(false), "false"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestTruthy(t *testing.T) {
	assert.False(t, Number(0).Truthy())
	assert.True(t, Number(-1).Truthy())
	assert.False(t, Float(0).Truthy())
	assert.True(t, Float(0.1).Truthy())
	assert.False(t, String("").Truthy())
	assert.True(t, String("a").Truthy())
	assert.False(t, Bool(false).Truthy())
	assert.True(t, Bool(true).Truthy())
}

func TestEqualIsStructural(t *testing.T) {
	assert.True(t, Number(2).Equal(Number(2)))
	assert.False(t, Number(2).Equal(Float(2)))
	assert.False(t, String("1").Equal(Number(1)))
	assert.True(t, Bool(true).Equal(Bool(true)))
	assert.Equal(t, Bool(false), Eq(String("a"), Bool(true)))
	assert.Equal(t, Bool(true), NotEq(String("a"), Bool(true)))
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Value) (Value, error)
		a, b Value
		want Value
	}{
		{"int add", Add, Number(2), Number(3), Number(5)},
		{"mixed add", Add, Number(2), Float(0.5), Float(2.5)},
		{"float add", Add, Float(1.5), Float(1.5), Float(3)},
		{"string concat", Add, String("a"), String("b"), String("ab")},
		{"string plus number", Add, String("n="), Number(3), String("n=3")},
		{"number plus string", Add, Number(3), String("x"), String("3x")},
		{"bool plus string", Add, Bool(true), String("!"), String("true!")},
		{"float plus string", Add, Float(1), String("!"), String("1.0!")},
		{"int sub", Sub, Number(8), Number(3), Number(5)},
		{"mixed sub", Sub, Float(1), Number(3), Float(-2)},
		{"int mul", Mul, Number(4), Number(5), Number(20)},
		{"mixed mul", Mul, Number(2), Float(1.5), Float(3)},
		{"string mul", Mul, String("Hi"), Number(3), String("HiHiHi")},
		{"number mul string", Mul, Number(3), String("Hi"), String("HiHiHi")},
		{"string mul zero", Mul, String("Hi"), Number(0), String("")},
		{"string mul negative", Mul, String("Hi"), Number(-2), String("")},
		{"div promotes", Div, Number(4), Number(2), Float(2)},
		{"div fraction", Div, Number(1), Number(4), Float(0.25)},
		{"int mod", Mod, Number(7), Number(3), Number(1)},
		{"float mod", Mod, Float(7.5), Number(2), Float(1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Value) (Value, error)
		a, b Value
		want error
	}{
		{"bool plus number", Add, Bool(true), Number(1), ErrInvalidType},
		{"sub strings", Sub, String("a"), String("b"), ErrInvalidType},
		{"mul strings", Mul, String("a"), String("b"), ErrInvalidType},
		{"mul string float", Mul, String("a"), Float(2), ErrInvalidType},
		{"div string", Div, String("a"), Number(1), ErrInvalidType},
		{"div by zero", Div, Number(5), Number(0), ErrDivideByZero},
		{"float div by zero", Div, Float(5), Number(0), ErrDivideByZero},
		{"div by float zero", Div, Number(5), Float(0), ErrDivideByZero},
		{"mod by zero", Mod, Number(5), Number(0), ErrDivideByZero},
		{"compare strings", Greater, String("a"), String("b"), ErrInvalidType},
		{"compare bools", LessEqual, Bool(true), Bool(false), ErrInvalidType},
		{"repeat too long", Mul, String("ab"), Number(math.MaxInt32), ErrInvalidType},
		{"number repeat too long", Mul, Number(MaxStringLen/2 + 1), String("ab"), ErrInvalidType},
		{"concat too long", Add, String(strings.Repeat("a", MaxStringLen)), String("b"), ErrInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op(tt.a, tt.b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestStringLimit(t *testing.T) {
	v, err := Mul(String("a"), Number(MaxStringLen))
	require.NoError(t, err)
	assert.Len(t, v.AsString(), MaxStringLen)

	_, err = Add(v, String("b"))
	require.ErrorIs(t, err, ErrInvalidType)
	assert.Equal(t, "string result of + too long: 16777217 bytes, limit is 16777216", err.Error())
}

func TestComparison(t *testing.T) {
	gt, err := Greater(Number(9), Number(9))
	require.NoError(t, err)
	assert.Equal(t, Bool(false), gt)

	ge, err := GreaterEqual(Number(5), Number(5))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), ge)

	ge, err = GreaterEqual(Number(2), Float(2))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), ge)

	le, err := LessEqual(Number(12), Number(8))
	require.NoError(t, err)
	assert.Equal(t, Bool(false), le)

	lt, err := Less(Float(1.5), Number(2))
	require.NoError(t, err)
	assert.Equal(t, Bool(true), lt)
}

func TestLogical(t *testing.T) {
	assert.Equal(t, Bool(true), Or(String(""), Number(1)))
	assert.Equal(t, Bool(false), And(String(""), Bool(true)))
	assert.Equal(t, Bool(true), And(Float(0.5), String("x")))
	assert.Equal(t, Bool(true), Not(Number(0)))
	assert.Equal(t, Bool(false), Not(String("x")))
}

func TestNegate(t *testing.T) {
	got, err := Negate(Number(5))
	require.NoError(t, err)
	assert.Equal(t, Number(-5), got)

	got, err = Negate(Float(1.5))
	require.NoError(t, err)
	assert.Equal(t, Float(-1.5), got)

	_, err = Negate(String("a"))
	assert.ErrorIs(t, err, ErrInvalidType)
	_, err = Negate(Bool(true))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestErrorKinds(t *testing.T) {
	err := NewUndefinedVariableError("x")
	assert.Equal(t, "undefined variable 'x'", err.Message())
	assert.ErrorIs(t, err, ErrUndefinedVariable)
	assert.NotErrorIs(t, err, ErrInvalidType)
	assert.Equal(t, "UndefinedVariable", err.Kind.String())
}
