// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package posit implements the posit<nbits,es> number format.
//
// A posit is a sign bit followed by a run-length encoded regime,
// up to es exponent bits and the remaining fraction bits.
// Negative posits are the two's complement of the whole pattern.
// 100...0 is NaR (not a real), 000...0 is zero.
package posit

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/avdva/unum/bitblock"
	mu "github.com/avdva/unum/internal/mathutil"
	"github.com/avdva/unum/value"
)

// Error is the class of configuration errors.
var Error = errs.Class("posit")

// Config describes a posit<Nbits,Es> format.
type Config struct {
	Nbits int
	Es    int
}

// Validate checks that Es >= 0 and Nbits >= Es+3.
func (c Config) Validate() error {
	if c.Es < 0 {
		return Error.New("negative es %d", c.Es)
	}
	if c.Nbits < c.Es+3 {
		return Error.New("nbits %d is too small for es %d", c.Nbits, c.Es)
	}
	return nil
}

func (c Config) mustValid() {
	if err := c.Validate(); err != nil {
		panic(err)
	}
}

// Fbits returns the maximum number of fraction bits.
func (c Config) Fbits() int {
	return c.Nbits - 3 - c.Es
}

// MaxScale returns the scale of maxpos.
func (c Config) MaxScale() int {
	return (c.Nbits - 2) << c.Es
}

// MinScale returns the scale of minpos.
func (c Config) MinScale() int {
	return -c.MaxScale()
}

// String returns the config as posit<nbits,es>.
func (c Config) String() string {
	return fmt.Sprintf("posit<%d,%d>", c.Nbits, c.Es)
}

// Posit is a posit number. It is immutable.
type Posit struct {
	cfg  Config
	bits bitblock.Block
}

// Zero returns the zero posit. It panics if the config is invalid.
func Zero(cfg Config) Posit {
	cfg.mustValid()
	return Posit{cfg: cfg, bits: bitblock.New(cfg.Nbits)}
}

// NaR returns the not-a-real posit.
func NaR(cfg Config) Posit {
	p := Zero(cfg)
	p.bits.Set(cfg.Nbits-1, true)
	return p
}

// MaxPos returns the largest positive posit, 2^MaxScale().
func MaxPos(cfg Config) Posit {
	p := Zero(cfg)
	p.bits.Flip()
	p.bits.Set(cfg.Nbits-1, false)
	return p
}

// MinPos returns the smallest positive posit, 2^MinScale().
func MinPos(cfg Config) Posit {
	p := Zero(cfg)
	p.bits.Set(0, true)
	return p
}

// FromBits returns a posit with the given raw pattern. Bits above Nbits are dropped.
func FromBits(cfg Config, b bitblock.Block) Posit {
	cfg.mustValid()
	return Posit{cfg: cfg, bits: b.Resize(cfg.Nbits)}
}

// FromUint64Bits returns a posit with the raw pattern taken from the low bits of v.
func FromUint64Bits(cfg Config, v uint64) Posit {
	cfg.mustValid()
	return Posit{cfg: cfg, bits: bitblock.FromUint64(cfg.Nbits, v)}
}

// FromFloat64 returns the posit nearest to f.
func FromFloat64(cfg Config, f float64) Posit {
	return FromValue(cfg, value.FromFloat64(f))
}

// FromValue encodes a decoded value, rounding to the nearest posit with ties to even.
// Values beyond the dynamic range saturate to maxpos and minpos, they never
// become zero or NaR. Infinities and NaN become NaR.
func FromValue(cfg Config, v value.Value) Posit {
	cfg.mustValid()
	switch {
	case v.IsNaN(), v.IsInf():
		return NaR(cfg)
	case v.IsZero():
		return Zero(cfg)
	}
	var p Posit
	switch scale := v.Scale(); {
	case scale >= cfg.MaxScale():
		p = MaxPos(cfg)
	case scale < cfg.MinScale():
		p = MinPos(cfg)
	default:
		p = Posit{cfg: cfg, bits: encode(cfg, scale, v.Fraction())}
	}
	if v.IsNeg() {
		p = p.Neg()
	}
	return p
}

// encode returns the pattern of the positive posit nearest to (1+fraction)*2^scale.
// scale must be within [MinScale, MaxScale).
func encode(cfg Config, scale int, fraction bitblock.Block) bitblock.Block {
	k := scale >> cfg.Es
	e := scale - k<<cfg.Es
	// k+1 ones and a zero, or -k zeros and a one.
	rlen := mu.AbsInt(k) + 1
	if k >= 0 {
		rlen++
	}
	n := rlen + cfg.Es + fraction.Len()
	work := fraction.Resize(n)
	pos := n - 1
	if k >= 0 {
		for i := 0; i <= k; i++ {
			work.Set(pos, true)
			pos--
		}
		pos--
	} else {
		pos += k
		work.Set(pos, true)
		pos--
	}
	for i := cfg.Es - 1; i >= 0; i-- {
		if e>>i&1 == 1 {
			work.Set(pos, true)
		}
		pos--
	}
	body := cfg.Nbits - 1
	if n <= body {
		bits := work.Resize(cfg.Nbits)
		bits.Lsh(body - n)
		return bits
	}
	shift := n - body
	guard := work.At(shift - 1)
	sticky := work.AnyBelow(shift - 1)
	work.Rsh(shift)
	bits := work.Resize(cfg.Nbits)
	if guard && (sticky || bits.At(0)) {
		bits.Increment()
	}
	return bits
}

// fields is a decoded positive pattern.
type fields struct {
	k, e int
	frac bitblock.Block // Fbits() wide, left-aligned
}

func (p Posit) decode() fields {
	u := p.bits.Clone()
	if p.bits.At(p.cfg.Nbits - 1) {
		u.Negate()
	}
	top := p.cfg.Nbits - 2
	r := u.At(top)
	m := 0
	for i := top; i >= 0 && u.At(i) == r; i-- {
		m++
	}
	f := fields{k: -m}
	if r {
		f.k = m - 1
	}
	for i := 0; i < p.cfg.Es; i++ {
		f.e <<= 1
		if u.At(top - m - 1 - i) {
			f.e |= 1
		}
	}
	fbits := p.cfg.Fbits()
	f.frac = bitblock.New(fbits)
	if rem := top - m - p.cfg.Es; rem > 0 {
		f.frac = u.Resize(rem).Resize(fbits)
		f.frac.Lsh(fbits - rem)
	}
	return f
}

// Bits returns a copy of the raw pattern.
func (p Posit) Bits() bitblock.Block {
	return p.bits.Clone()
}

// Config returns the format of p.
func (p Posit) Config() Config {
	return p.cfg
}

// Nbits returns the width of p.
func (p Posit) Nbits() int {
	return p.cfg.Nbits
}

// Es returns the maximum number of exponent bits.
func (p Posit) Es() int {
	return p.cfg.Es
}

// Fbits returns the width of the fraction returned by Value.
func (p Posit) Fbits() int {
	return p.cfg.Fbits()
}

// IsZero returns true if p is zero.
func (p Posit) IsZero() bool {
	return !p.bits.Any()
}

// IsNaR returns true if p is not a real.
func (p Posit) IsNaR() bool {
	top := p.cfg.Nbits - 1
	return p.bits.At(top) && !p.bits.AnyBelow(top)
}

// IsNeg returns true if p < 0. NaR is not negative.
func (p Posit) IsNeg() bool {
	return p.bits.At(p.cfg.Nbits-1) && !p.IsNaR()
}

// Sign returns -1 if p < 0, 1 if p > 0, and 0 for zero and NaR.
func (p Posit) Sign() int {
	switch {
	case p.IsZero(), p.IsNaR():
		return 0
	case p.IsNeg():
		return -1
	default:
		return 1
	}
}

// Regime returns the regime value k.
func (p Posit) Regime() int {
	return p.decode().k
}

// Exponent returns the value of the exponent bits.
// Exponent bits cut off by a long regime read as zero.
func (p Posit) Exponent() int {
	return p.decode().e
}

// Scale returns the binary exponent k*2^es + e of |p|.
// For zero it is the scale of an all-zero regime, which is negative.
func (p Posit) Scale() int {
	f := p.decode()
	return f.k<<p.cfg.Es + f.e
}

// Significant returns the hidden bit and the fraction as a Fbits()+1 wide block,
// with the hidden bit at index Fbits(). It is all zeros for zero and NaR.
func (p Posit) Significant() bitblock.Block {
	fbits := p.cfg.Fbits()
	if p.IsZero() || p.IsNaR() {
		return bitblock.New(fbits + 1)
	}
	sig := p.decode().frac.Resize(fbits + 1)
	sig.Set(fbits, true)
	return sig
}

// Value decodes p. NaR decodes to NaN.
func (p Posit) Value() value.Value {
	switch {
	case p.IsNaR():
		return value.NaN()
	case p.IsZero():
		return value.New(false, 0, bitblock.New(p.cfg.Fbits()), true, false, false)
	}
	f := p.decode()
	return value.New(p.IsNeg(), f.k<<p.cfg.Es+f.e, f.frac, false, false, false)
}

// Float64 returns the nearest float64. NaR is NaN.
func (p Posit) Float64() float64 {
	return p.Value().Float64()
}

// Neg returns -p. Zero and NaR are their own negations.
func (p Posit) Neg() Posit {
	p.bits = p.bits.Clone()
	p.bits.Negate()
	return p
}

// Eq returns true if p and q have the same format and pattern.
func (p Posit) Eq(q Posit) bool {
	return p.cfg == q.cfg && p.bits.Equal(q.bits)
}

// Decimal returns the exact decimal value of p. NaR has no value and returns zero.
func (p Posit) Decimal() decimal.Decimal {
	if p.IsZero() || p.IsNaR() {
		return decimal.Zero
	}
	sig := new(big.Int).SetBytes(p.Significant().Bytes())
	shift := p.Scale() - p.cfg.Fbits()
	var d decimal.Decimal
	if shift >= 0 {
		d = decimal.NewFromBigInt(sig.Lsh(sig, uint(shift)), 0)
	} else {
		// sig/2^n == sig*5^n/10^n.
		pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-shift)), nil)
		d = decimal.NewFromBigInt(sig.Mul(sig, pow), int32(shift))
	}
	if p.IsNeg() {
		d = d.Neg()
	}
	return d
}

// String returns the exact decimal value of p, or NaR.
func (p Posit) String() string {
	if p.IsNaR() {
		return "NaR"
	}
	return p.Decimal().String()
}

// GoString returns the format and the raw pattern of p, like posit<8,0>(0b01110010).
func (p Posit) GoString() string {
	return fmt.Sprintf("%s(0b%s)", p.cfg, p.bits)
}
