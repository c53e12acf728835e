// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bitblock implements a fixed-size bit vector.
//
// Bit 0 is the least significant bit. A Block shares its storage when it is
// copied by value, use Clone to get an independent copy before mutating.
package bitblock

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"

	mu "github.com/avdva/unum/internal/mathutil"
)

// Block is a vector of Len() bits.
type Block struct {
	nbits int
	words []uint64
}

// New returns a zero block of nbits bits. New panics if nbits is negative.
func New(nbits int) Block {
	if nbits < 0 {
		panic(fmt.Sprintf("bitblock: negative width %d", nbits))
	}
	return Block{nbits: nbits, words: make([]uint64, mu.WordCount(nbits))}
}

// FromUint64 returns an nbits wide block holding the low bits of v.
func FromUint64(nbits int, v uint64) Block {
	b := New(nbits)
	if len(b.words) > 0 {
		b.words[0] = v
		b.norm()
	}
	return b
}

// FromBytes returns an nbits wide block holding the low bits of
// the big-endian number in data.
func FromBytes(nbits int, data []byte) Block {
	b := New(nbits)
	for i := range b.words {
		end := len(data) - i*8
		if end <= 0 {
			break
		}
		var buf [8]byte
		start := end - 8
		if start < 0 {
			start = 0
		}
		copy(buf[8-(end-start):], data[start:end])
		b.words[i] = binary.BigEndian.Uint64(buf[:])
	}
	b.norm()
	return b
}

// Len returns the width of the block.
func (b Block) Len() int {
	return b.nbits
}

// At returns bit i. Bits outside of the block read as zero.
func (b Block) At(i int) bool {
	if i < 0 || i >= b.nbits {
		return false
	}
	w, o := mu.SplitIndex(i)
	return b.words[w]>>o&1 == 1
}

// Set sets bit i to v. Set panics if i is out of range.
func (b *Block) Set(i int, v bool) {
	if i < 0 || i >= b.nbits {
		panic(fmt.Sprintf("bitblock: index %d out of range [0,%d)", i, b.nbits))
	}
	w, o := mu.SplitIndex(i)
	if v {
		b.words[w] |= 1 << o
	} else {
		b.words[w] &^= 1 << o
	}
}

// Clone returns a copy of b that does not share storage with it.
func (b Block) Clone() Block {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return Block{nbits: b.nbits, words: words}
}

// Resize returns a copy of b with the width of nbits.
// Extra high bits are dropped, new high bits are zero.
func (b Block) Resize(nbits int) Block {
	c := New(nbits)
	copy(c.words, b.words)
	c.norm()
	return c
}

// Reset clears all the bits.
func (b *Block) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Flip inverts all the bits.
func (b *Block) Flip() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
	b.norm()
}

// Lsh shifts the bits n positions towards the most significant end.
// Bits shifted past the width are lost. A negative n shifts right.
func (b *Block) Lsh(n int) {
	if n < 0 {
		b.Rsh(-n)
		return
	}
	if n >= b.nbits {
		b.Reset()
		return
	}
	ws, bs := mu.SplitIndex(n)
	for i := len(b.words) - 1; i >= 0; i-- {
		var w uint64
		if j := i - ws; j >= 0 {
			w = b.words[j] << bs
			if bs > 0 && j > 0 {
				w |= b.words[j-1] >> (uint(mu.WordBits) - bs)
			}
		}
		b.words[i] = w
	}
	b.norm()
}

// Rsh shifts the bits n positions towards the least significant end, filling
// the top with zeros. A negative n shifts left.
func (b *Block) Rsh(n int) {
	if n < 0 {
		b.Lsh(-n)
		return
	}
	if n >= b.nbits {
		b.Reset()
		return
	}
	ws, bs := mu.SplitIndex(n)
	for i := range b.words {
		var w uint64
		if j := i + ws; j < len(b.words) {
			w = b.words[j] >> bs
			if bs > 0 && j+1 < len(b.words) {
				w |= b.words[j+1] << (uint(mu.WordBits) - bs)
			}
		}
		b.words[i] = w
	}
}

// Add sets b to b+other modulo 2^Len() and reports the carry out of the top bit.
// Add panics if the widths differ.
func (b *Block) Add(other Block) (carry bool) {
	if other.nbits != b.nbits {
		panic(fmt.Sprintf("bitblock: width mismatch %d != %d", b.nbits, other.nbits))
	}
	var c uint64
	for i := range b.words {
		b.words[i], c = bits.Add64(b.words[i], other.words[i], c)
	}
	return b.carryOut(c)
}

// Increment adds one to b and reports the carry out of the top bit.
func (b *Block) Increment() (carry bool) {
	c := uint64(1)
	for i := range b.words {
		b.words[i], c = bits.Add64(b.words[i], 0, c)
	}
	return b.carryOut(c)
}

// Negate replaces b with its two's complement within the width.
// The pattern 100...0 is its own negation.
func (b *Block) Negate() {
	b.Flip()
	b.Increment()
}

// Msb returns the index of the most significant set bit, or -1 if no bit is set.
func (b Block) Msb() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return i*mu.WordBits + mu.Msb64(w)
		}
	}
	return -1
}

// Any reports whether any bit is set.
func (b Block) Any() bool {
	for _, w := range b.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// AnyBelow reports whether any of the bits [0, i) is set.
func (b Block) AnyBelow(i int) bool {
	if i <= 0 {
		return false
	}
	if i >= b.nbits {
		return b.Any()
	}
	ws, o := mu.SplitIndex(i)
	for _, w := range b.words[:ws] {
		if w != 0 {
			return true
		}
	}
	return b.words[ws]&(1<<o-1) != 0
}

// Equal returns true if both blocks have the same width and bits.
func (b Block) Equal(other Block) bool {
	if b.nbits != other.nbits {
		return false
	}
	for i, w := range b.words {
		if other.words[i] != w {
			return false
		}
	}
	return true
}

// Uint64 returns the low 64 bits.
func (b Block) Uint64() uint64 {
	if len(b.words) == 0 {
		return 0
	}
	return b.words[0]
}

// Bytes returns the bits as a big-endian byte slice of 8*ceil(Len()/64) bytes.
func (b Block) Bytes() []byte {
	data := make([]byte, len(b.words)*8)
	for i, w := range b.words {
		end := len(data) - i*8
		binary.BigEndian.PutUint64(data[end-8:end], w)
	}
	return data
}

// String returns the bits, most significant first.
func (b Block) String() string {
	var builder strings.Builder
	builder.Grow(b.nbits)
	for i := b.nbits - 1; i >= 0; i-- {
		if b.At(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

func (b *Block) carryOut(c uint64) bool {
	_, r := mu.SplitIndex(b.nbits)
	if r == 0 {
		return c != 0
	}
	carry := b.words[len(b.words)-1]>>r != 0
	b.norm()
	return carry
}

// norm clears the unused bits of the top word.
func (b *Block) norm() {
	if n := len(b.words); n > 0 {
		b.words[n-1] &= mu.TopWordMask(b.nbits)
	}
}
