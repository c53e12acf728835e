// Copyright 2020 Aleksandr Demakin. All rights reserved.

package integer

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

const (
	digitSep = '\''
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// Parse parses s into an nbits wide integer.
//
// Accepted forms are decimal, 0x hex, 0b binary, 0o or 0-prefixed octal, with an
// optional sign, optional surrounding quotes and spaces, and ' or _ digit separators,
// like "-1234", "0x5555'5555" or "0b1111_1011".
// Decimal numbers must fit the width, otherwise the wrapped value and an Overflow
// error are returned. Unsigned hex, binary and octal numbers of at most nbits
// bits are taken as raw two's-complement patterns, so "0xff" is -1 for 8 bits.
func Parse(nbits int, s string) (Integer, error) {
	mustWidth(nbits)
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return Integer{}, Error.New("empty input")
	}
	mag, base, err := parseMagnitude(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Integer{}, Error.Wrap(fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1)))
	}
	if base != 10 && !neg && mag.BitLen() <= nbits {
		return FromBigInt(nbits, mag), nil
	}
	if neg {
		mag.Neg(mag)
	}
	x := FromBigInt(nbits, mag)
	if x.BigInt().Cmp(mag) != 0 {
		return x, Overflow.New("%s does not fit %d bits", mag, nbits)
	}
	return x, nil
}

// MustParse is like Parse, but panics on error.
func MustParse(nbits int, s string) Integer {
	x, err := Parse(nbits, s)
	if err != nil {
		panic(err)
	}
	return x
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

// parseMagnitude parses an unsigned number with an optional base prefix.
func parseMagnitude(s string) (mag *big.Int, base int, err error) {
	base, start := 10, 0
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, start = 16, 2
		case 'b', 'B':
			base, start = 2, 2
		case 'o', 'O':
			base, start = 8, 2
		default:
			base, start = 8, 1
		}
	}
	var b strings.Builder
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case c == digitSep || c == '_':
			if b.Len() == 0 || i == len(s)-1 {
				return nil, 0, newPosError("unexpected separator", i)
			}
		case digitValue(c) < base:
			b.WriteByte(c)
		default:
			return nil, 0, newPosError(fmt.Sprintf("unexpected symbol %q", c), i)
		}
	}
	if b.Len() == 0 {
		return nil, 0, newPosError("no digits", len(s))
	}
	mag, ok := new(big.Int).SetString(b.String(), base)
	if !ok {
		return nil, 0, newPosError("invalid number", start)
	}
	return mag, base, nil
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 36
	}
}
