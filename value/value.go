// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package value implements a decoded number: a sign, a binary scale and the
// fraction bits below the hidden bit, plus the zero, infinity and NaN states.
//
// It is the common form the integer and posit conversions pass numbers in.
// The sign is kept apart from the magnitude, so decoding does not depend on
// the native representation of the target type.
package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/avdva/unum/bitblock"
	mu "github.com/avdva/unum/internal/mathutil"
)

const (
	// float64 has 52 explicit fraction bits.
	float64FracBits = 52
	// at most that many fraction bits are used by Float64.
	maxFloatBits = 64
)

// Value is a decoded number. Unless it is special, it represents
//
//	(-1)^sign * (1 + fraction/2^Fbits()) * 2^scale
//
// where the fraction is left-aligned: its bit Fbits()-1 is worth 1/2.
type Value struct {
	neg      bool
	scale    int
	fraction bitblock.Block
	zero     bool
	inf      bool
	nan      bool
}

// New returns a decoded value. The special states are mutually exclusive:
// isNaN takes precedence over isInf, and isInf over isZero.
func New(sign bool, scale int, fraction bitblock.Block, isZero, isInf, isNaN bool) Value {
	v := Value{neg: sign, scale: scale, fraction: fraction.Clone()}
	switch {
	case isNaN:
		v.nan = true
	case isInf:
		v.inf = true
	case isZero:
		v.zero = true
	}
	return v
}

// Zero returns a zero value.
func Zero() Value {
	return New(false, 0, bitblock.Block{}, true, false, false)
}

// Inf returns a negative infinity if neg is set, a positive one otherwise.
func Inf(neg bool) Value {
	return New(neg, 0, bitblock.Block{}, false, true, false)
}

// NaN returns a not-a-number value.
func NaN() Value {
	return New(false, 0, bitblock.Block{}, false, false, true)
}

// FromFloat64 decodes a float64. Subnormals are normalized.
func FromFloat64(f float64) Value {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 0):
		return Inf(f < 0)
	case f == 0:
		return New(math.Signbit(f), 0, bitblock.New(float64FracBits), true, false, false)
	}
	// |f| = frac * 2^exp, 0.5 <= frac < 1.
	frac, exp := math.Frexp(math.Abs(f))
	mant := uint64((frac*2 - 1) * (1 << float64FracBits))
	return New(math.Signbit(f), exp-1, bitblock.FromUint64(float64FracBits, mant), false, false, false)
}

// IsNeg returns the sign.
func (v Value) IsNeg() bool {
	return v.neg
}

// Scale returns the binary exponent. It is meaningless for special values.
func (v Value) Scale() int {
	return v.scale
}

// Fraction returns a copy of the fraction bits.
func (v Value) Fraction() bitblock.Block {
	return v.fraction.Clone()
}

// Fbits returns the width of the fraction.
func (v Value) Fbits() int {
	return v.fraction.Len()
}

// IsZero returns true for zero.
func (v Value) IsZero() bool {
	return v.zero
}

// IsInf returns true for infinities.
func (v Value) IsInf() bool {
	return v.inf
}

// IsNaN returns true for not-a-number.
func (v Value) IsNaN() bool {
	return v.nan
}

// Neg returns v with the opposite sign.
func (v Value) Neg() Value {
	v.neg = !v.neg
	return v
}

// Float64 returns the nearest float64, truncating fractions longer than 64 bits.
func (v Value) Float64() float64 {
	switch {
	case v.nan:
		return math.NaN()
	case v.inf:
		return math.Inf(signOf(v.neg))
	case v.zero:
		return 0
	}
	n := mu.MinInt(v.Fbits(), maxFloatBits)
	top := v.Fraction()
	top.Rsh(v.Fbits() - n)
	mant := top.Resize(n).Uint64()
	f := math.Ldexp(1+math.Ldexp(float64(mant), -n), v.scale)
	if v.neg {
		f = -f
	}
	return f
}

// String returns the value as (sign,scale,fraction), like (+,2,0100).
func (v Value) String() string {
	var builder strings.Builder
	switch {
	case v.nan:
		return "nan"
	case v.inf:
		if v.neg {
			builder.WriteRune('-')
		}
		builder.WriteString("inf")
		return builder.String()
	case v.zero:
		return "0"
	}
	builder.WriteRune('(')
	if v.neg {
		builder.WriteRune('-')
	} else {
		builder.WriteRune('+')
	}
	builder.WriteRune(',')
	builder.WriteString(strconv.Itoa(v.scale))
	builder.WriteRune(',')
	builder.WriteString(v.fraction.String())
	builder.WriteRune(')')
	return builder.String()
}

func signOf(neg bool) int {
	if neg {
		return -1
	}
	return 1
}
