// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package integer implements a fixed-width two's-complement integer
// of arbitrary precision.
//
// The width of an Integer is chosen at construction and never changes.
// Results that do not fit the width wrap around; operations that can
// detect it also return an Overflow error.
package integer

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/avdva/unum/bitblock"
)

var (
	// Error is the class of parsing and encoding errors.
	Error = errs.Class("integer")
	// Overflow is the class of errors reported when a result does not fit
	// the width of an integer.
	Overflow = errs.Class("overflow")
)

// Integer is a two's-complement integer of Nbits() bits.
//
// Integer behaves like a value: copies never observe changes made through
// the pointer methods of another copy.
type Integer struct {
	bits bitblock.Block
}

// New returns an nbits wide zero. New panics if nbits < 1.
func New(nbits int) Integer {
	mustWidth(nbits)
	return Integer{bits: bitblock.New(nbits)}
}

// FromInt64 returns v as an nbits wide integer, wrapping if it does not fit.
func FromInt64(nbits int, v int64) Integer {
	mustWidth(nbits)
	if v >= 0 {
		return Integer{bits: bitblock.FromUint64(nbits, uint64(v))}
	}
	// sign extension: flipping ^v sets every bit above 64.
	b := bitblock.FromUint64(nbits, ^uint64(v))
	b.Flip()
	return Integer{bits: b}
}

// From returns a native integer as an nbits wide integer, wrapping if it does not fit.
func From[T constraints.Integer](nbits int, v T) Integer {
	if v < 0 {
		return FromInt64(nbits, int64(v))
	}
	mustWidth(nbits)
	return Integer{bits: bitblock.FromUint64(nbits, uint64(v))}
}

// FromBigInt returns x modulo 2^nbits as an nbits wide integer.
func FromBigInt(nbits int, x *big.Int) Integer {
	mustWidth(nbits)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(nbits))
	m := new(big.Int).Mod(x, mod)
	return Integer{bits: bitblock.FromBytes(nbits, m.Bytes())}
}

// FromBits returns an integer holding the raw bits of b. Its width is b.Len().
func FromBits(b bitblock.Block) Integer {
	mustWidth(b.Len())
	return Integer{bits: b.Clone()}
}

// Max returns the largest nbits wide integer, 2^(nbits-1) - 1.
func Max(nbits int) Integer {
	x := New(nbits)
	x.bits.Flip()
	x.bits.Set(nbits-1, false)
	return x
}

// Min returns the smallest nbits wide integer, -2^(nbits-1).
func Min(nbits int) Integer {
	x := New(nbits)
	x.bits.Set(nbits-1, true)
	return x
}

func mustWidth(nbits int) {
	if nbits < 1 {
		panic(Error.New("invalid width %d", nbits))
	}
}

// Nbits returns the width of x.
func (x Integer) Nbits() int {
	return x.bits.Len()
}

// IsNeg returns true if x < 0.
func (x Integer) IsNeg() bool {
	return x.bits.At(x.bits.Len() - 1)
}

// IsZero returns true if x == 0.
func (x Integer) IsZero() bool {
	return !x.bits.Any()
}

// Sign returns -1 if x < 0, 0 if x == 0, 1 if x > 0.
func (x Integer) Sign() int {
	switch {
	case x.IsNeg():
		return -1
	case x.IsZero():
		return 0
	default:
		return 1
	}
}

// Msb returns the index of the most significant set bit of the raw
// two's-complement pattern, or -1 if x is zero.
func (x Integer) Msb() int {
	return x.bits.Msb()
}

// At returns bit i of the raw pattern. Bit 0 is the least significant.
func (x Integer) At(i int) bool {
	return x.bits.At(i)
}

// Set sets bit i of the raw pattern.
func (x *Integer) Set(i int, v bool) {
	x.bits = x.bits.Clone()
	x.bits.Set(i, v)
}

// SetBits assigns the raw bits of b to x. Bits beyond the width of x are dropped,
// missing high bits are zero. A zero Integer takes the width of b.
func (x *Integer) SetBits(b bitblock.Block) {
	if x.Nbits() == 0 {
		*x = FromBits(b)
		return
	}
	x.bits = b.Resize(x.Nbits())
}

// Bits returns a copy of the raw two's-complement pattern.
func (x Integer) Bits() bitblock.Block {
	return x.bits.Clone()
}

// Negate replaces x with its two's complement.
// The most negative value is its own negation.
func (x *Integer) Negate() {
	x.bits = x.bits.Clone()
	x.bits.Negate()
}

// TwosComplement returns -x, wrapping for the most negative value.
func (x Integer) TwosComplement() Integer {
	x.Negate()
	return x
}

// magnitude returns |x| as an unsigned bit pattern. It is exact for every
// value including the most negative one.
func (x Integer) magnitude() bitblock.Block {
	b := x.bits.Clone()
	if x.IsNeg() {
		b.Negate()
	}
	return b
}

// Scale returns the binary exponent of |x|, which is the index of its most
// significant bit. Zero has no scale and reports 0.
func (x Integer) Scale() int {
	if x.IsZero() {
		return 0
	}
	return x.magnitude().Msb()
}

// Add returns x+y. If the sum does not fit, the wrapped sum and an Overflow error are returned.
// Add panics if the widths differ.
func (x Integer) Add(y Integer) (Integer, error) {
	x.mustMatch(y)
	sum := x.bits.Clone()
	sum.Add(y.bits)
	z := Integer{bits: sum}
	if x.IsNeg() == y.IsNeg() && z.IsNeg() != x.IsNeg() {
		return z, Overflow.New("%s + %s does not fit %d bits", x, y, x.Nbits())
	}
	return z, nil
}

// Sub returns x-y. If the difference does not fit, the wrapped difference and an Overflow error are returned.
// Sub panics if the widths differ.
func (x Integer) Sub(y Integer) (Integer, error) {
	x.mustMatch(y)
	neg := y.bits.Clone()
	neg.Negate()
	diff := x.bits.Clone()
	diff.Add(neg)
	z := Integer{bits: diff}
	if x.IsNeg() != y.IsNeg() && z.IsNeg() != x.IsNeg() {
		return z, Overflow.New("%s - %s does not fit %d bits", x, y, x.Nbits())
	}
	return z, nil
}

func (x Integer) mustMatch(y Integer) {
	if x.Nbits() != y.Nbits() {
		panic(Error.New("width mismatch: %d != %d", x.Nbits(), y.Nbits()))
	}
}

// Cmp compares two integers of any widths.
// Returns -1 if x < y, 0 if x == y, 1 if x > y
func (x Integer) Cmp(y Integer) int {
	return x.BigInt().Cmp(y.BigInt())
}

// Eq returns true if both integers represent the same number.
func (x Integer) Eq(y Integer) bool {
	return x.Cmp(y) == 0
}

// Int64 returns x as an int64, or an Overflow error if it does not fit.
func (x Integer) Int64() (int64, error) {
	b := x.BigInt()
	if !b.IsInt64() {
		return 0, Overflow.New("%s does not fit 64 bits", b)
	}
	return b.Int64(), nil
}

// BigInt returns x as a big.Int.
func (x Integer) BigInt() *big.Int {
	b := new(big.Int).SetBytes(x.magnitude().Bytes())
	if x.IsNeg() {
		b.Neg(b)
	}
	return b
}

// String returns the decimal representation of x.
func (x Integer) String() string {
	return x.BigInt().String()
}

// Binary returns the raw bits of x, like 0b1111'1011 for an 8-bit -5.
// The result can be parsed back with Parse.
func (x Integer) Binary() string {
	var builder strings.Builder
	builder.WriteString("0b")
	for i := x.Nbits() - 1; i >= 0; i-- {
		if x.At(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
		if i > 0 && i%4 == 0 {
			builder.WriteByte(digitSep)
		}
	}
	return builder.String()
}

// Format implements fmt.Formatter with the verbs of big.Int.
func (x Integer) Format(fs fmt.State, c rune) {
	x.BigInt().Format(fs, c)
}
