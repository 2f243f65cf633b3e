// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n, res int64
	}{
		{-3, 0},
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := Factorial(test.n)
			a.True(ok)
			a.Equal(test.res, res)
		})
	}
	_, ok := Factorial(MaxFactorial + 1)
	a.False(ok)
}

func TestFactorialFloat(t *testing.T) {
	a := assert.New(t)
	a.Equal(0.0, FactorialFloat(-1))
	a.Equal(1.0, FactorialFloat(0))
	a.Equal(1.0, FactorialFloat(1))
	a.Equal(3628800.0, FactorialFloat(10))
	for n := 0; n <= 20; n++ {
		exact, _ := Factorial(int64(n))
		a.Equal(float64(exact), FactorialFloat(n), "%d!", n)
	}
	a.InEpsilon(6.689502913449127e198, FactorialFloat(120), 1e-12)
	a.False(math.IsInf(FactorialFloat(MaxFactorialFloat), 1))
	a.True(math.IsInf(FactorialFloat(MaxFactorialFloat+1), 1))
}

func TestPowInt(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base, exp, res int64
	}{
		{2, 10, 1024},
		{-2, 3, -8},
		{-2, 4, 16},
		{7, 0, 1},
		{0, 0, 1},
		{0, 5, 0},
		{3, -1, 0},
		{-2, 63, math.MinInt64},
		{3, 39, 4052555153018976267},
		{1, math.MaxInt64, 1},
		{-1, math.MaxInt64, -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, ok := PowInt(test.base, test.exp)
			a.True(ok)
			a.Equal(test.res, res)
		})
	}
	for _, test := range [][2]int64{{2, 63}, {2, 64}, {3, 40}, {-3, 41}, {2, math.MaxInt64}, {1 << 32, 2}} {
		_, ok := PowInt(test[0], test[1])
		a.False(ok, "%d^%d", test[0], test[1])
	}
}

func TestPowFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		base float64
		exp  int
		res  float64
	}{
		{2, 10, 1024},
		{-2, -2, 0.25},
		{-2, 3, -8},
		{0.5, 2, 0.25},
		{1.5, 0, 1},
		{10, -3, 0.001},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.InDelta(test.res, PowFloat(test.base, test.exp), 1e-15)
		})
	}
	a.Equal(0.0, PowFloat(2, math.MinInt))
	a.True(math.IsInf(PowFloat(0.5, math.MinInt), 1))
	a.True(math.IsInf(PowFloat(2, math.MaxInt), 1))
	a.True(math.IsInf(PowFloat(-2, math.MaxInt), -1))
	a.Equal(1.0, PowFloat(-1, math.MaxInt-1))
	a.Equal(-1.0, PowFloat(-1, math.MaxInt))
	a.Equal(0.0, PowFloat(-2, -1000000000000000))
	a.InEpsilon(math.Pow(1.0000001, 1e7), PowFloat(1.0000001, 10000000), 1e-7)
}

func TestCheckedArithmetic(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b          int64
		add, sub, mul bool
	}{
		{1, 2, true, true, true},
		{math.MaxInt64, 1, false, true, true},
		{math.MinInt64, 1, true, false, true},
		{math.MinInt64, -1, false, true, false},
		{math.MaxInt64, -1, true, false, true},
		{-1, math.MaxInt64, true, true, true},
		{1 << 32, 1 << 31, true, true, false},
		{1 << 32, -(1 << 31), true, true, true},
		{0, math.MinInt64, true, false, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sum, ok := AddInt64(test.a, test.b)
			a.Equal(test.add, ok)
			if ok {
				a.Equal(test.a+test.b, sum)
			}
			diff, ok := SubInt64(test.a, test.b)
			a.Equal(test.sub, ok)
			if ok {
				a.Equal(test.a-test.b, diff)
			}
			prod, ok := MulInt64(test.a, test.b)
			a.Equal(test.mul, ok)
			if ok {
				a.Equal(test.a*test.b, prod)
			}
		})
	}
	a.PanicsWithError("natural.Mul: integer overflow: 4294967296 * 4294967296", func() {
		Mul("natural.Mul", 1<<32, 1<<32)
	})
	a.Panics(func() { Add("add", math.MaxInt64, 1) })
	a.Panics(func() { Sub("sub", math.MinInt64, 1) })
	a.Panics(func() { Pow("pow", 10, 19) })
	a.Panics(func() { Fact("fact", 21) })
	a.Equal(int64(1e18), Pow("pow", 10, 18))
}

func TestCmpProducts(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, c, d int64
		cmp        int
	}{
		{2, 3, 3, 2, 0},
		{2, 3, 1, 5, 1},
		{-2, 3, 1, 5, -1},
		{-2, -3, 2, 3, 0},
		{0, 5, 0, -7, 0},
		{0, 5, -1, 1, 1},
		{math.MaxInt64, math.MaxInt64, math.MaxInt64, math.MaxInt64 - 1, 1},
		{math.MinInt64, 2, math.MaxInt64, -2, -1},
		{math.MinInt64, -1, math.MaxInt64, 1, 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.cmp, CmpProducts(test.a, test.b, test.c, test.d))
			a.Equal(-test.cmp, CmpProducts(test.c, test.d, test.a, test.b))
		})
	}
}

func TestGCD(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res int64
	}{
		{12, 18, 6},
		{18, 12, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, GCD(test.a, test.b))
		})
	}
}

func TestAbsSign(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, AbsInt(-5))
	a.Equal(5, AbsInt(5))
	a.Equal(int64(0), AbsInt64(0))
	a.Equal(int64(math.MaxInt64), AbsInt64(-math.MaxInt64))
	a.Equal(2.5, AbsFloat(-2.5))
	a.Equal(2.5, AbsFloat(2.5))
	a.Equal(-1, Int64Sign(-7))
	a.Equal(0, Int64Sign(0))
	a.Equal(1, Int64Sign(7))
	a.True(SameSign(-1, -5))
	a.True(SameSign(0, 5))
	a.False(SameSign(-1, 5))
}

func TestDomainError(t *testing.T) {
	a := assert.New(t)
	err := func() (err error) {
		defer func() {
			err = AsDomainError(recover())
		}()
		Domainf("sqrt", "negative argument %v", -1.0)
		return nil
	}()
	if a.Error(err) {
		a.EqualError(err, "sqrt: negative argument -1")
		a.True(errors.Is(err, ErrDomain))
		var de *DomainError
		a.True(errors.As(err, &de))
		a.Equal("sqrt", de.Op)
	}
	a.NoError(AsDomainError(nil))
	a.PanicsWithValue("boom", func() {
		_ = AsDomainError("boom")
	})
}

func BenchmarkInt64Sign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Int64Sign(int64(i)) + Int64Sign(int64(-i)) + Int64Sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkFactorialFloat(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += FactorialFloat(i % 20)
	}
	b.ReportMetric(dummy, "dummy_metric")
}
