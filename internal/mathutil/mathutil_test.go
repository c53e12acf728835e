// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		nbits, words int
		mask         uint64
	}{
		{0, 0, math.MaxUint64},
		{1, 1, 1},
		{8, 1, 0xff},
		{63, 1, math.MaxUint64 >> 1},
		{64, 1, math.MaxUint64},
		{65, 2, 1},
		{128, 2, math.MaxUint64},
		{256, 4, math.MaxUint64},
		{257, 5, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.words, WordCount(test.nbits))
			a.Equal(test.mask, TopWordMask(test.nbits))
		})
	}
}

func TestSplitIndex(t *testing.T) {
	a := assert.New(t)
	w, o := SplitIndex(0)
	a.Equal(0, w)
	a.Equal(uint(0), o)
	w, o = SplitIndex(63)
	a.Equal(0, w)
	a.Equal(uint(63), o)
	w, o = SplitIndex(64)
	a.Equal(1, w)
	a.Equal(uint(0), o)
	w, o = SplitIndex(200)
	a.Equal(3, w)
	a.Equal(uint(8), o)
}

func TestMsb64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		msb int
	}{
		{0, -1},
		{1, 0},
		{5, 2},
		{0x80, 7},
		{math.MaxUint64, 63},
		{1 << 40, 40},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.msb, Msb64(test.v))
			a.Equal(test.msb+1, BinaryDigits(test.v))
		})
	}
}

func TestAbsMinMax(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, AbsInt(-5))
	a.Equal(5, AbsInt(5))
	a.Equal(0, AbsInt(0))
	a.Equal(math.MaxInt32, AbsInt(-math.MaxInt32))
	a.Equal(3, MaxInt(3, -1))
	a.Equal(-1, MinInt(3, -1))
}

func BenchmarkMsb64(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Msb64(uint64(i)) + Msb64(uint64(-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
