// Copyright 2020 Aleksandr Demakin. All rights reserved.

package integer

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type TC struct {
		nbits    int
		s        string
		str      string
		overflow bool
		err      string
		Mark     error
	}

	tcs := []TC{
		{nbits: 8, s: "0", str: "0", Mark: oops.New("unexpected")},
		{nbits: 8, s: "-0", str: "0", Mark: oops.New("unexpected")},
		{nbits: 8, s: " +12 ", str: "12", Mark: oops.New("unexpected")},
		{nbits: 8, s: `"-128"`, str: "-128", Mark: oops.New("unexpected")},
		{nbits: 8, s: "0x7f", str: "127", Mark: oops.New("unexpected")},
		{nbits: 8, s: "0xff", str: "-1", Mark: oops.New("unexpected")},
		{nbits: 8, s: "-0x80", str: "-128", Mark: oops.New("unexpected")},
		{nbits: 8, s: "0b1111'1011", str: "-5", Mark: oops.New("unexpected")},
		{nbits: 8, s: "0b0000_0101", str: "5", Mark: oops.New("unexpected")},
		{nbits: 16, s: "017", str: "15", Mark: oops.New("unexpected")},
		{nbits: 16, s: "0o17", str: "15", Mark: oops.New("unexpected")},
		{nbits: 16, s: "1'234", str: "1234", Mark: oops.New("unexpected")},
		{nbits: 64, s: "1234567890", str: "1234567890", Mark: oops.New("unexpected")},
		{
			nbits: 128,
			s:     "0x5555'5555'5555'5555'5555'5555'5555'5555",
			str:   "113427455640312821154458202477256070485",
			Mark:  oops.New("unexpected"),
		},
		{
			nbits: 128,
			s:     "0xffff'ffff'ffff'ffff'ffff'ffff'ffff'ffff",
			str:   "-1",
			Mark:  oops.New("unexpected"),
		},
		{
			nbits: 128,
			s:     "0x8000'0000'0000'0000'0000'0000'0000'0000",
			str:   "-170141183460469231731687303715884105728",
			Mark:  oops.New("unexpected"),
		},
		{nbits: 8, s: "128", str: "-128", overflow: true, Mark: oops.New("unexpected")},
		{nbits: 8, s: "-129", str: "127", overflow: true, Mark: oops.New("unexpected")},
		{nbits: 8, s: "0x1ff", str: "-1", overflow: true, Mark: oops.New("unexpected")},
		{nbits: 8, s: "", err: "empty input", Mark: oops.New("unexpected")},
		{nbits: 8, s: `" "`, err: "empty input", Mark: oops.New("unexpected")},
		{nbits: 8, s: "12z", err: "unexpected symbol 'z' at pos 3", Mark: oops.New("unexpected")},
		{nbits: 8, s: " -1z", err: "unexpected symbol 'z' at pos 4", Mark: oops.New("unexpected")},
		{nbits: 8, s: "09", err: "unexpected symbol '9' at pos 2", Mark: oops.New("unexpected")},
		{nbits: 8, s: "0x", err: "no digits at pos 3", Mark: oops.New("unexpected")},
		{nbits: 8, s: "1'", err: "unexpected separator at pos 2", Mark: oops.New("unexpected")},
		{nbits: 8, s: "'1", err: "unexpected separator at pos 1", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.s), func(t *testing.T) {
			x, err := Parse(tc.nbits, tc.s)
			switch {
			case tc.err != "":
				require.Error(t, err, tc.Mark)
				require.True(t, Error.Has(err), tc.Mark)
				require.Contains(t, err.Error(), tc.err, tc.Mark)
				return
			case tc.overflow:
				require.True(t, Overflow.Has(err), tc.Mark)
			default:
				require.NoError(t, err, tc.Mark)
			}
			require.Equal(t, tc.nbits, x.Nbits(), tc.Mark)
			require.Equal(t, tc.str, x.String(), tc.Mark)
		})
	}
}

func TestParseBinaryRoundtrip(t *testing.T) {
	for v := int64(-128); v < 128; v++ {
		x := FromInt64(8, v)
		y, err := Parse(8, x.Binary())
		require.NoError(t, err)
		require.True(t, x.Eq(y), "%d: %s", v, x.Binary())
	}
}

func TestMustParse(t *testing.T) {
	require.Equal(t, "-5", MustParse(8, "-5").String())
	require.Panics(t, func() { MustParse(8, "x") })
	require.Panics(t, func() { MustParse(0, "1") })
}
