// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avdva/numtower"
	"github.com/avdva/numtower/cplx"
	"github.com/avdva/numtower/integer"
	"github.com/avdva/numtower/internal/render"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
	"github.com/avdva/numtower/reals"
)

var demos = map[numtower.Set]func(p *printer){
	numtower.SetNatural:  demoNatural,
	numtower.SetInteger:  demoInteger,
	numtower.SetRational: demoRational,
	numtower.SetReal:     demoReal,
	numtower.SetComplex:  demoComplex,
}

var demoCmd = &cobra.Command{
	Use:       "demo [natural|integer|rational|real|complex]...",
	Short:     "Show the operations of the numeric sets",
	ValidArgs: []string{"natural", "integer", "rational", "real", "complex"},
	Args:      cobra.OnlyValidArgs,
	RunE:      runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	sets := []numtower.Set{numtower.SetNatural, numtower.SetInteger, numtower.SetRational, numtower.SetReal, numtower.SetComplex}
	if len(args) > 0 {
		sets = sets[:0]
		for _, arg := range args {
			set, err := numtower.ParseSet(arg)
			if err != nil {
				return err
			}
			sets = append(sets, set)
		}
	}
	p := &printer{w: cmd.OutOrStdout(), opts: opts}
	for i, set := range sets {
		if i > 0 {
			p.println()
		}
		p.printf("%s:\n", set)
		demos[set](p)
	}
	return p.err
}

// printer keeps the first write error.
type printer struct {
	w    io.Writer
	opts render.Options
	err  error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println() {
	p.printf("\n")
}

func (p *printer) show(n numtower.Number) string {
	return render.Number(n, p.opts)
}

func demoNatural(p *printer) {
	a, b := natural.MustNew(2), natural.MustNew(3)
	p.printf("%v + %v = %v\n", a, b, a.Add(b))
	p.printf("%v * %v = %v\n", a, b, a.Mul(b))
	p.printf("%v^%v = %v\n", a, b, a.Pow(b))
	a = a.Add(b)
	p.printf("factorial(%v) = %v\n", a, a.Factorial())
	p.printf("%v == %v is %t\n", a, b, a.Eq(b))
	p.printf("%v == %v is %t\n", a, a, a.Eq(a))
}

func demoInteger(p *printer) {
	z1, z2 := integer.Integer(5), integer.Integer(7)
	p.printf("%v + %v = %v\n", z1, z2, z1.Add(z2))
	p.printf("%v - %v = %v\n", z1, z2, z1.Sub(z2))
	p.printf("%v * %v = %v\n", z1, z2, z1.Mul(z2))
	p.printf("factorial(%v) = %v\n", z2, z2.Factorial())
	n := natural.MustNew(3)
	p.printf("%v^%v = %v\n", z1, n, z1.Pow(n))
	z1 = -13
	p.printf("abs(%v) = %v\n", z1, z1.Abs())
	p.printf("%v == %v is %t\n", z1, z2, z1.Eq(z2))
	p.printf("%v == %v is %t\n", z2, z2, z2.Eq(z2))
}

func demoRational(p *printer) {
	q1, q2 := rational.MustNew(3, 4), rational.MustNew(1, 2)
	p.printf("%v + %v = %v = %v\n", q1, q2, q1.Add(q2), q1.Add(q2).Reduce())
	p.printf("%v - %v = %v = %v\n", q1, q2, q1.Sub(q2), q1.Sub(q2).Reduce())
	p.printf("%v * %v = %v\n", q1, q2, q1.Mul(q2))
	p.printf("%v / %v = %v = %v\n", q1, q2, q1.Div(q2), q1.Div(q2).Reduce())
	q2 = rational.MustNew(-4, 3)
	p.printf("abs(%v) = %v\n", q2, q2.Abs())
	z := integer.Integer(0)
	p.printf("%v^%v = %v\n", q1, z, q1.Pow(z))
	z = 2
	q1 = rational.MustNew(q1.Num(), 6)
	p.printf("%v^%v = %v = %v\n", q1, z, q1.Pow(z), q1.Pow(z).Reduce())
	p.printf("%v == %v is %t\n", q1, q2, q1.Eq(q2))
	p.printf("%v == %v is %t\n", q1, q1, q1.Eq(q1))
	p.printf("%v as decimal = %s\n", q1, p.show(q1))
}

func demoReal(p *printer) {
	r1, r2 := reals.New(6), reals.New(3)
	p.printf("e = %s\n", p.show(reals.E()))
	p.printf("pi = %s\n", p.show(reals.Pi()))
	p.printf("%v + %v = %s\n", r1, r2, p.show(r1.Add(r2)))
	p.printf("%v - %v = %s\n", r1, r2, p.show(r1.Sub(r2)))
	p.printf("%v * %v = %s\n", r1, r2, p.show(r1.Mul(r2)))
	p.printf("%v / %v = %s\n", r1, r2, p.show(r1.Div(r2)))

	r1 = 32.75
	p.printf("integer part (%v) = %s\n", r1, p.show(reals.IntPart(r1)))
	p.printf("decimal part (%v) = %s\n", r1, p.show(reals.DecPart(r1)))
	r1 = -12.57
	p.printf("abs(%v) = %s\n", r1, p.show(reals.Abs(r1)))
	pi := reals.Pi()
	p.printf("fmod(3*pi, 2*pi) = %s\n", p.show(reals.Fmod(3*pi, 2*pi)))
	p.printf("sign(%v) = %s\n", r1, p.show(reals.Sign(r1)))
	p.printf("neg(%v) = %s\n", r1, p.show(r1.Neg()))
	r1 = 2.6
	p.printf("ceil(%v) = %s\n", r1, p.show(reals.Ceil(r1)))
	p.printf("floor(%v) = %s\n", r1, p.show(reals.Floor(r1)))
	p.printf("round(%v) = %s\n", r1, p.show(reals.Round(r1)))
	r1 = 6
	p.printf("max(%v, %v) = %s\n", r1, r2, p.show(reals.Max(r1, r2)))
	p.printf("min(%v, %v) = %s\n", r1, r2, p.show(reals.Min(r1, r2)))
	r1, r2 = 3, 4
	p.printf("square(%v) = %s\n", r1, p.show(reals.Square(r1)))
	p.printf("hypot(3, 4) = %.1f\n", reals.Hypot(r1, r2).Float64())
	p.printf("factorial(120) = %s\n", p.show(reals.Factorial(120)))

	p.printf("2^6 = %.1f\n", reals.Pow(2, 6).Float64())
	p.printf("-2^-2 = %.2f\n", reals.Pow(-2, -2).Float64())
	p.printf("exp(0) = %s\n", p.show(reals.Exp(0)))
	p.printf("exp(1) = %s\n", p.show(reals.Exp(1)))
	p.printf("log(1) = %.1f\n", reals.Log(1).Float64())
	p.printf("log(e) = %.1f\n", reals.Log(reals.E()).Float64())
	p.printf("log2(1024) = %.1f\n", reals.Log2(1024).Float64())
	p.printf("log10(1000000) = %.1f\n", reals.Log10(1000000).Float64())
	p.printf("log10(1/1000) = %.1f\n", reals.Log10(1.0/1000).Float64())
	p.printf("sqrt(2) = %s\n", p.show(reals.Sqrt(2)))
	p.printf("curt(125) = %.1f\n", reals.Curt(125).Float64())
	n := natural.MustNew(12)
	p.printf("%vth root of 2 = %s\n", n, p.show(reals.Ithrt(2, n)))

	r1 = 3.0 / 4 * pi
	r2 = reals.Sin(r1)
	p.printf("sin(3/4*pi) = %s\n", p.show(r2))
	p.printf("asin(%f) = %f radians, = %.2f degrees.\n", r2.Float64(), reals.Asin(r2).Float64(), reals.ToDegrees(reals.Asin(r2)).Float64())
	r1 = pi / 8
	r2 = reals.Cos(r1)
	p.printf("cos(pi/8) = %s\n", p.show(r2))
	p.printf("acos(%f) = %f radians, = %.2f degrees.\n", r2.Float64(), reals.Acos(r2).Float64(), reals.ToDegrees(reals.Acos(r2)).Float64())
	r1 = 3.0 / 4 * pi
	r2 = reals.Tan(r1)
	p.printf("tan(3/4*pi) = %.1f\n", r2.Float64())
	p.printf("atan(%.1f) = %f radians, %.2f degrees.\n", r2.Float64(), reals.Atan(r2).Float64(), reals.ToDegrees(reals.Atan(r2)).Float64())
	atan2 := reals.Atan2(4, 3)
	p.printf("atan2(4, 3) = %f radians, %.2f degrees.\n", atan2.Float64(), reals.ToDegrees(atan2).Float64())

	p.printf("cosh(1/4) = %s\n", p.show(reals.Cosh(1.0/4)))
	p.printf("sinh(3/2) = %s\n", p.show(reals.Sinh(3.0/2)))
	r2 = reals.Tanh(4.0 / 3)
	p.printf("tanh(4/3) = %s\n", p.show(r2))
	p.printf("atanh(%f) = %f\n", r2.Float64(), reals.Atanh(r2).Float64())
}

func demoComplex(p *printer) {
	c1, c2 := cplx.New(2, 3), cplx.New(-4, 5)
	p.printf("%s + %s = %s\n", p.show(c1), p.show(c2), p.show(c1.Add(c2)))
	p.printf("%s - %s = %s\n", p.show(c1), p.show(c2), p.show(c1.Sub(c2)))
	p.printf("%s * %s = %s\n", p.show(c1), p.show(c2), p.show(c1.Mul(c2)))
	p.printf("%s / %s = %s\n", p.show(c1), p.show(c2), p.show(c1.Div(c2)))

	f := reals.New(0.5)
	p.printf("scale(%s, %v) = %s\n", p.show(c1), f, p.show(c1.Scale(f)))
	p.printf("conjugated(%s) = %s\n", p.show(c1), p.show(c1.Conjugated()))
	p.printf("reciprocal(%s) = %s\n", p.show(c1), p.show(c1.Reciprocal()))
	p.printf("%s * reciprocal(%s) = %s\n", p.show(c1), p.show(c1), p.show(c1.Mul(c1.Reciprocal())))
	c1 = cplx.New(3, 4)
	p.printf("mag(3, 4i) = %.1f\n", c1.Mag().Float64())
	p.printf("arg(%s) = %s\n", p.show(c1), p.show(c1.Arg()))

	p.printf("sin(%s) = %s\n", p.show(c1), p.show(c1.Sin()))
	p.printf("cos(%s) = %s\n", p.show(c1), p.show(c1.Cos()))
	p.printf("tan(%s) = %s\n", p.show(c1), p.show(c1.Tan()))
	p.printf("exp(%s) = %s\n", p.show(c1), p.show(c1.Exp()))
}
