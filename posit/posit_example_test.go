// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit_test

import (
	"fmt"

	"github.com/avdva/unum/posit"
)

func ExampleFromFloat64() {
	cfg := posit.Config{Nbits: 8, Es: 0}
	for _, f := range []float64{5, 1.02, -0.3, 1000} {
		p := posit.FromFloat64(cfg, f)
		fmt.Printf("%v -> %s %s\n", f, p.Bits(), p)
	}
	// Output:
	// 5 -> 01110010 5
	// 1.02 -> 01000001 1.03125
	// -0.3 -> 11101101 -0.296875
	// 1000 -> 01111111 64
}

func ExamplePosit_Value() {
	p := posit.FromUint64Bits(posit.Config{Nbits: 8, Es: 2}, 0x65)
	fmt.Println(p.Regime(), p.Exponent(), p.Scale(), p.Significant())
	fmt.Println(p.Value(), p)
	// Output:
	// 1 1 5 1010
	// (+,5,010) 40
}
