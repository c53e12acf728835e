// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	a := assert.New(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-ibits", "8", "-nbits", "8", "-es", "0", "5", "-128"}, &stdout, &stderr)
	a.Equal(0, code)
	a.Empty(stderr.String())
	a.Equal(`integer<8> 5 0b0000'0101
value       (+,2,0100000)
posit<8,0>  01110010 5
back        5
integer<8> -128 0b1000'0000
value       (-,7,0000000)
posit<8,0>  10000001 -64
back        -64
`, stdout.String())
}

func TestRunOverflow(t *testing.T) {
	a := assert.New(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-ibits", "8", "-nbits", "16", "-es", "1", "127"}, &stdout, &stderr)
	a.Equal(0, code)
	a.Contains(stdout.String(), "back        127\n")

	stdout.Reset()
	code = run([]string{"-ibits", "4", "-nbits", "6", "-es", "0", "7"}, &stdout, &stderr)
	a.Equal(0, code)
	a.Contains(stdout.String(), "back        -8 (overflow: 8 does not fit 4 bits)\n")
}

func TestRunJSON(t *testing.T) {
	a := assert.New(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-json", "-ibits", "8", "-nbits", "8", "-es", "0", "0x72"}, &stdout, &stderr)
	a.Equal(0, code)
	a.JSONEq(`{"integer":"114","binary":"0b0111'0010","value":"(+,6,1100100)",`+
		`"posit":"64","bits":"01111111","back":"64"}`, stdout.String())
}

func TestRunErrors(t *testing.T) {
	a := assert.New(t)
	var stdout, stderr bytes.Buffer
	a.Equal(1, run([]string{"-nbits", "2", "1"}, &stdout, &stderr))
	a.Contains(stderr.String(), "posit: nbits 2 is too small for es 2")

	stderr.Reset()
	a.Equal(1, run([]string{"-ibits", "8", "1z", "3"}, &stdout, &stderr))
	a.Contains(stderr.String(), "1z: integer: parsing failed")

	a.Equal(1, run([]string{"-ibits", "0", "1"}, &stdout, &stderr))
	a.Equal(2, run([]string{"-nosuchflag"}, &stdout, &stderr))
}
