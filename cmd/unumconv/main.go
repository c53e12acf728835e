// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command unumconv converts integers to posits and back, printing every step.
//
//	unumconv -ibits 8 -nbits 8 -es 0 5 -5 0x7f
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/avdva/unum"
	"github.com/avdva/unum/integer"
	"github.com/avdva/unum/posit"
)

type record struct {
	Integer  integer.Integer `json:"integer"`
	Binary   string          `json:"binary"`
	Value    string          `json:"value"`
	Posit    string          `json:"posit"`
	Bits     string          `json:"bits"`
	Back     integer.Integer `json:"back"`
	Overflow string          `json:"overflow,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("unumconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ibits := fs.Int("ibits", 64, "integer width in bits")
	nbits := fs.Int("nbits", 32, "posit width in bits")
	es := fs.Int("es", 2, "posit exponent bits")
	asJSON := fs.Bool("json", false, "print one json object per integer")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg := posit.Config{Nbits: *nbits, Es: *es}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *ibits < 1 {
		fmt.Fprintf(stderr, "invalid integer width %d\n", *ibits)
		return 1
	}
	enc := json.NewEncoder(stdout)
	code := 0
	for _, arg := range fs.Args() {
		w, err := integer.Parse(*ibits, arg)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", arg, err)
			code = 1
			continue
		}
		r := convert(w, cfg)
		if *asJSON {
			if err := enc.Encode(r); err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			continue
		}
		fmt.Fprintf(stdout, "integer<%d> %s %s\n", *ibits, r.Integer, r.Binary)
		fmt.Fprintf(stdout, "value       %s\n", r.Value)
		fmt.Fprintf(stdout, "%s  %s %s\n", cfg, r.Bits, r.Posit)
		fmt.Fprintf(stdout, "back        %s", r.Back)
		if r.Overflow != "" {
			fmt.Fprintf(stdout, " (%s)", r.Overflow)
		}
		fmt.Fprintln(stdout)
	}
	return code
}

func convert(w integer.Integer, cfg posit.Config) record {
	p := unum.IntegerToPosit(w, cfg)
	back, err := unum.CheckedPositToInteger(p, w.Nbits())
	r := record{
		Integer: w,
		Binary:  w.Binary(),
		Value:   unum.IntegerToValue(w).String(),
		Posit:   p.String(),
		Bits:    p.Bits().String(),
		Back:    back,
	}
	if err != nil {
		r.Overflow = err.Error()
	}
	return r
}
