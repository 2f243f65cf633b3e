// Copyright 2020 Aleksandr Demakin. All rights reserved.

package reals

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinCos(t *testing.T) {
	a := assert.New(t)
	for i, x := range []float64{-10, -3.5, -1, 0, 0.5, 1, 2, math.Pi, 6, 10, 25} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sin, cos := Sin(Real(x)), Cos(Real(x))
			approx(a, math.Sin(x), sin, "sin(%v)", x)
			approx(a, math.Cos(x), cos, "cos(%v)", x)
			approx(a, 1, Square(sin)+Square(cos), "sin^2 + cos^2 for %v", x)
		})
	}
}

func TestTan(t *testing.T) {
	a := assert.New(t)
	for _, x := range []float64{-1, -0.3, 0, 0.3, 1.2} {
		approx(a, math.Tan(x), Tan(Real(x)), "tan(%v)", x)
	}
	a.Greater(math.Abs(Tan(Pi()/2).Float64()), 1e9)
}

func TestAtanTan(t *testing.T) {
	a := assert.New(t)
	for i, x := range []float64{-1.2, -0.785, -0.5, 0, 0.3, 0.6, 0.7, 0.75, 0.78, 0.785, math.Pi / 4, 0.8, 1.0, 1.3} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			approx(a, x, Atan(Tan(Real(x))), "atan(tan(%v))", x)
		})
	}
	approx(a, math.Pi/4, Atan(1))
	approx(a, -math.Pi/4, Atan(-1))
	approx(a, math.Atan(20), Atan(20))
	approx(a, math.Atan(-0.25), Atan(-0.25))
	for _, x := range []float64{0.79, 0.8, 0.81, 0.9, 0.999, -0.999, 1.001} {
		approx(a, math.Atan(x), Atan(Real(x)), "atan(%v)", x)
	}
	a.True(math.IsNaN(Atan(Real(math.NaN())).Float64()))
	a.True(math.IsNaN(Atan2(Real(math.NaN()), 1).Float64()))
	approx(a, math.Pi/2, Atan(Real(math.Inf(1))))
}

func TestAsinAcos(t *testing.T) {
	a := assert.New(t)
	for _, x := range []float64{-0.9999, -0.99, -0.9, -0.3, 0, 0.5, 0.51, 0.7, 0.9, 0.99, 0.9999, 0.999999} {
		approx(a, math.Asin(x), Asin(Real(x)), "asin(%v)", x)
		approx(a, math.Acos(x), Acos(Real(x)), "acos(%v)", x)
	}
	a.Equal(Pi()/2, Asin(1))
	a.Equal(-Pi()/2, Asin(-1))
	a.Equal(Zero, Acos(1))
	for _, x := range []Real{1.01, -2, Real(math.NaN())} {
		a.Panics(func() {
			Asin(x)
		})
		a.Panics(func() {
			Acos(x)
		})
	}
}

func TestAtan2(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		y, x Real
		res  float64
	}{
		{1, 1, math.Pi / 4},
		{-1, 1, -math.Pi / 4},
		{1, -1, math.Pi / 4},
		{-1, -1, -math.Pi / 4},
		{2, 0, math.Pi / 2},
		{-2, 0, -math.Pi / 2},
		{0, 0, math.Pi / 2},
		{0, 5, 0},
		{3, 4, math.Atan2(3, 4)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			approx(a, test.res, Atan2(test.y, test.x), "atan2(%v, %v)", test.y, test.x)
		})
	}
}

func TestHyperbolic(t *testing.T) {
	a := assert.New(t)
	for i, x := range []float64{-3, -0.5, 0, 1, 2.5, 8} {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			approx(a, math.Sinh(x), Sinh(Real(x)), "sinh(%v)", x)
			approx(a, math.Cosh(x), Cosh(Real(x)), "cosh(%v)", x)
			approx(a, math.Tanh(x), Tanh(Real(x)), "tanh(%v)", x)
		})
	}
	// no range reduction for hyperbolic functions.
	approx(a, math.Cosh(7), Cosh(7))
	approx(a, math.Sinh(-2*math.Pi-1), Sinh(Real(-2*math.Pi-1)))
}

func TestAtanh(t *testing.T) {
	a := assert.New(t)
	for _, x := range []float64{-0.3, 0, 0.1, 0.5} {
		approx(a, math.Atanh(x), Atanh(Real(x)), "atanh(%v)", x)
	}
	for _, x := range []Real{1, -1, 3} {
		a.Panics(func() {
			Atanh(x)
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	a := assert.New(t)
	expected := Sin(1) + Log(3)
	results := make([]Real, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Sin(1) + Log(3)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		a.Equal(expected, r)
	}
}

func BenchmarkSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Sin(Real(i % 7))
	}
}

func BenchmarkMathSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		math.Sin(float64(i % 7))
	}
}
