// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numtower

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/numtower/cplx"
	"github.com/avdva/numtower/integer"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
	"github.com/avdva/numtower/reals"
)

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		n   Number
		err string
	}{
		{s: "12", n: natural.MustNew(12)},
		{s: " 007 ", n: natural.MustNew(7)},
		{s: "+12", n: integer.Integer(12)},
		{s: "-12", n: integer.Integer(-12)},
		{s: "0", n: integer.Zero},
		{s: "3/4", n: rational.MustNew(3, 4)},
		{s: "-6/8", n: rational.MustNew(-6, 8)},
		{s: "1/-2", n: rational.MustNew(1, -2)},
		{s: "1.5", n: reals.Real(1.5)},
		{s: "-.25", n: reals.Real(-0.25)},
		{s: "2.", n: reals.Real(2)},
		{s: "1e3", n: reals.Real(1000)},
		{s: "1E-2", n: reals.Real(0.01)},
		{s: "pi", n: reals.Pi()},
		{s: "PI", n: reals.Pi()},
		{s: "π", n: reals.Pi()},
		{s: "e", n: reals.E()},
		{s: "i", n: cplx.I},
		{s: "-i", n: cplx.New(0, -1)},
		{s: "2i", n: cplx.New(0, 2)},
		{s: "3+4i", n: cplx.New(3, 4)},
		{s: "3-i", n: cplx.New(3, -1)},
		{s: "-1.5+0.5i", n: cplx.New(-1.5, 0.5)},
		{s: "1e-3-2e+1i", n: cplx.New(0.001, -20)},
		{s: "", err: "empty input"},
		{s: "   ", err: "empty input"},
		{s: "12a", err: "parsing failed: unexpected symbol 'a' at pos 3"},
		{s: " 12a", err: "parsing failed: unexpected symbol 'a' at pos 4"},
		{s: "1..2", err: "parsing failed: unexpected delimiter at pos 3"},
		{s: "1e", err: "parsing failed: exponent expected at pos 3"},
		{s: "1e5x", err: "parsing failed: unexpected symbol 'x' in exponent at pos 4"},
		{s: "-", err: "parsing failed: digits expected at pos 2"},
		{s: "3/0", err: "parsing failed: zero denominator at pos 3"},
		{s: "3/x", err: "parsing failed: unexpected symbol 'x' at pos 3"},
		{s: "1.5/2", err: "parsing failed: integer expected at pos 1"},
		{s: "3+4xi", err: "parsing failed: unexpected symbol 'x' at pos 4"},
		{s: "99999999999999999999", err: "parsing failed: value out of range at pos 1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, err := Parse(test.s)
			if len(test.err) > 0 {
				a.EqualError(err, test.err, "parsing %q", test.s)
				a.Panics(func() {
					MustParse(test.s)
				})
				return
			}
			if a.NoError(err, "parsing %q", test.s) {
				a.Equal(test.n, n)
			}
		})
	}
}
