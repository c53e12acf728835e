// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package unum converts between fixed-width two's-complement integers
// and posits.
//
// Integers are decoded into a value.Value (sign, scale, fraction) and then
// rounded into a posit. Posits go back to integers by shifting the
// significand by the scale, which truncates toward zero.
// Results that do not fit the integer width wrap around, the Checked
// variants report it as an integer.Overflow error.
package unum

import (
	"github.com/zeebo/errs"

	"github.com/avdva/unum/bitblock"
	"github.com/avdva/unum/integer"
	mu "github.com/avdva/unum/internal/mathutil"
	"github.com/avdva/unum/posit"
	"github.com/avdva/unum/value"
)

// Error is the class of values that have no integer counterpart.
var Error = errs.Class("unum")

// Significand is a binary number given by its sign, scale and significand bits.
// posit.Posit implements it.
type Significand interface {
	IsNeg() bool
	// IsNaR returns true if the number has no real value.
	IsNaR() bool
	// Scale returns the binary exponent. A negative scale means |x| < 1.
	Scale() int
	// Fbits returns the number of fraction bits in Significant.
	Fbits() int
	// Significant returns the Fbits()+1 wide significand with the hidden bit at Fbits().
	Significant() bitblock.Block
}

// IntegerToValue decodes w. The fraction is Nbits()-1 bits wide and
// holds the bits of |w| below its most significant bit, left-aligned.
// The conversion is exact, including the most negative value.
func IntegerToValue(w integer.Integer) value.Value {
	fbits := w.Nbits() - 1
	if w.IsZero() {
		return value.New(false, 0, bitblock.New(fbits), true, false, false)
	}
	neg := w.IsNeg()
	if neg {
		// the most negative value stays the same,
		// but its raw pattern is the exact magnitude.
		w.Negate()
	}
	msb := w.Msb()
	fraction := w.Bits()
	fraction.Set(msb, false)
	fraction = fraction.Resize(fbits)
	fraction.Lsh(fbits - msb)
	return value.New(neg, msb, fraction, false, false, false)
}

// IntegerToPosit returns the posit nearest to w.
func IntegerToPosit(w integer.Integer, cfg posit.Config) posit.Posit {
	return posit.FromValue(cfg, IntegerToValue(w))
}

// SignificandToInteger returns s truncated toward zero as an nbits wide integer.
// Values with a negative scale become zero. Magnitudes that do not fit wrap around.
// NaR becomes the most negative integer.
func SignificandToInteger(s Significand, nbits int) integer.Integer {
	x := integer.New(nbits)
	if s.IsNaR() {
		return integer.Min(nbits)
	}
	scale := s.Scale()
	if scale < 0 {
		return x
	}
	fbits := s.Fbits()
	// radix point is at fbits, move it to the right of bit 0.
	buf := s.Significant().Resize(mu.MaxInt(nbits, fbits+1))
	buf.Lsh(scale - fbits)
	x.SetBits(buf)
	if s.IsNeg() {
		x.Negate()
	}
	return x
}

// PositToInteger returns p truncated toward zero as an nbits wide integer.
// See SignificandToInteger.
func PositToInteger(p posit.Posit, nbits int) integer.Integer {
	return SignificandToInteger(p, nbits)
}

// ValueToInteger returns v truncated toward zero as an nbits wide integer.
// Infinities and NaN become the most negative integer.
func ValueToInteger(v value.Value, nbits int) integer.Integer {
	return SignificandToInteger(decoded{v: v}, nbits)
}

// CheckedPositToInteger is like PositToInteger, but returns an Error for NaR
// and an integer.Overflow error if the truncated value does not fit nbits bits.
// The wrapped result is returned along with Overflow.
func CheckedPositToInteger(p posit.Posit, nbits int) (integer.Integer, error) {
	return checkedToInteger(p, nbits)
}

// CheckedValueToInteger is like ValueToInteger, but returns an Error for
// infinities and NaN and an integer.Overflow error if the truncated value
// does not fit nbits bits.
func CheckedValueToInteger(v value.Value, nbits int) (integer.Integer, error) {
	return checkedToInteger(decoded{v: v}, nbits)
}

func checkedToInteger(s Significand, nbits int) (integer.Integer, error) {
	x := SignificandToInteger(s, nbits)
	if s.IsNaR() {
		return x, Error.New("%v has no integer value", s)
	}
	scale := s.Scale()
	switch {
	case scale < nbits-1:
		return x, nil
	case s.IsNeg() && scale == nbits-1 && x.Eq(integer.Min(nbits)):
		return x, nil
	}
	return x, integer.Overflow.New("%v does not fit %d bits", s, nbits)
}

// decoded adapts value.Value to Significand.
type decoded struct {
	v value.Value
}

func (d decoded) IsNeg() bool {
	return d.v.IsNeg()
}

func (d decoded) IsNaR() bool {
	return d.v.IsInf() || d.v.IsNaN()
}

func (d decoded) Scale() int {
	if d.v.IsZero() {
		return -1
	}
	return d.v.Scale()
}

func (d decoded) Fbits() int {
	return d.v.Fbits()
}

func (d decoded) Significant() bitblock.Block {
	fbits := d.v.Fbits()
	sig := d.v.Fraction().Resize(fbits + 1)
	sig.Set(fbits, true)
	return sig
}

func (d decoded) String() string {
	return d.v.String()
}
