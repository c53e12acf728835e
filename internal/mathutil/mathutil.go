// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains word-level helpers shared by the bit vector,
// value, posit and conversion packages.
package mathutil

import (
	"math/bits"
	"unsafe"
)

const (
	// WordBits is the number of bits in a storage word.
	WordBits = int(8 * unsafe.Sizeof(uint64(0)))

	wordShift = 6
	wordMask  = WordBits - 1
)

// WordCount returns the number of words needed to hold nbits bits.
func WordCount(nbits int) int {
	return (nbits + WordBits - 1) >> wordShift
}

// TopWordMask returns the mask of the bits used in the most significant word
// of an nbits wide vector.
func TopWordMask(nbits int) uint64 {
	remaining := nbits & wordMask
	if remaining == 0 {
		return ^uint64(0)
	}
	return ^(^uint64(0) << remaining)
}

// SplitIndex returns the word index and the offset within that word of bit i.
func SplitIndex(i int) (word int, offset uint) {
	return i >> wordShift, uint(i & wordMask)
}

// BinaryDigits returns the number of binary digits in 'value'.
func BinaryDigits(value uint64) int {
	return WordBits - bits.LeadingZeros64(value)
}

// Msb64 returns the index of the highest set bit of 'value', or -1 for zero.
func Msb64(value uint64) int {
	return BinaryDigits(value) - 1
}

// AbsInt returns |val|.
func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
