// Copyright 2020 Aleksandr Demakin. All rights reserved.

package reals

import (
	mu "github.com/avdva/numtower/internal/mathutil"
)

// SeriesLength is the number of iterations every series and iterative approximation runs.
// There is no early exit on convergence.
const SeriesLength = 150

const (
	parityCos = 0
	paritySin = 1

	// asin converges too slowly near ±1 for more terms to be useful,
	// and (2n)! overflows float64 soon after.
	asinTerms = SeriesLength - 70

	// logReduceBase is the factor log() divides its argument by,
	// until the argument gets into the domain of logNewton.
	logReduceBase = 100.0
)

// constants computed once at package initialization by the series below.
var (
	e  = eSeries()
	pi = 4 * (5*atanSeries(1.0/7) + 2*atanSeries(3.0/79))

	ln2   = logNewton(2)
	ln10  = logNewton(10)
	ln100 = logNewton(logReduceBase)
)

// eSeries returns Σ 1/n! for n in [0, SeriesLength].
func eSeries() float64 {
	var sum float64
	for n := 0; n <= SeriesLength; n++ {
		sum += 1 / mu.FactorialFloat(n)
	}
	return sum
}

// sincosSeries evaluates Σ (-1)^k x^(2k+parity) / (2k+parity)!.
// x is expected to be already reduced modulo 2π.
func sincosSeries(x float64, parity int) float64 {
	var sum float64
	sign := 1.0
	for n := parity; n < SeriesLength; n += 2 {
		sum += sign * mu.PowFloat(x, n) / mu.FactorialFloat(n)
		sign = -sign
	}
	return sum
}

// sincoshSeries evaluates Σ x^(2k+parity) / (2k+parity)!.
func sincoshSeries(x float64, parity int) float64 {
	var sum float64
	for n := parity; n < SeriesLength; n += 2 {
		sum += mu.PowFloat(x, n) / mu.FactorialFloat(n)
	}
	return sum
}

// expSeries evaluates Σ x^n/n! for n in [0, SeriesLength].
func expSeries(x float64) float64 {
	var sum float64
	for n := 0; n <= SeriesLength; n++ {
		sum += mu.PowFloat(x, n) / mu.FactorialFloat(n)
	}
	return sum
}

// atanSeries evaluates the Maclaurin series Σ (-1)^k x^(2k+1) / (2k+1).
// Only valid for |x| < 1.
func atanSeries(x float64) float64 {
	var sum float64
	sign := 1.0
	for n := 1; n < SeriesLength; n += 2 {
		sum += sign * mu.PowFloat(x, n) / float64(n)
		sign = -sign
	}
	return sum
}

// atanhSeries evaluates Σ x^(2k+1) / (2k+1). Only valid for |x| < 1.
func atanhSeries(x float64) float64 {
	var sum float64
	for n := 1; n < SeriesLength; n += 2 {
		sum += mu.PowFloat(x, n) / float64(n)
	}
	return sum
}

// asinSeries evaluates Σ (2n)! x^(2n+1) / (4^n (2n+1) (n!)^2) for |x| <= 1.
func asinSeries(x float64) float64 {
	switch x {
	case 1:
		return pi / 2
	case -1:
		return -pi / 2
	}
	var sum float64
	for n := 0; n < asinTerms; n++ {
		nf := mu.FactorialFloat(n)
		sum += mu.FactorialFloat(2*n) * mu.PowFloat(x, 2*n+1) /
			(mu.PowFloat(4, n) * float64(2*n+1) * nf * nf)
	}
	return sum
}

// logNewton refines y(k+1) = y(k) + 2(x - exp(y(k)))/(x + exp(y(k))), starting from x-1.
// Valid for 0 < x <= logReduceBase, x is not checked here.
func logNewton(x float64) float64 {
	y := x - 1
	for n := 0; n <= SeriesLength; n++ {
		ey := expSeries(y)
		y += 2 * (x - ey) / (x + ey)
	}
	return y
}
