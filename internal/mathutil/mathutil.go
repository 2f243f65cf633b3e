// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains integer primitives shared by all the layers of the tower.
package mathutil

import (
	"math"
	"unsafe"
)

// MaxFactorialFloat is the largest n, for which n! fits a float64.
const MaxFactorialFloat = 170

var (
	factorialTable = func() [MaxFactorialFloat + 1]float64 {
		var t [MaxFactorialFloat + 1]float64
		t[0] = 1
		for n := 1; n < len(t); n++ {
			t[n] = float64(n) * t[n-1]
		}
		return t
	}()
)

// MaxFactorial is the largest n, for which n! fits an int64.
const MaxFactorial = 20

// Factorial returns n! for a machine-width integer.
// Returns 0 for negative n, and false if n > MaxFactorial.
func Factorial(n int64) (int64, bool) {
	if n < 0 {
		return 0, true
	}
	if n > MaxFactorial {
		return 0, false
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result, true
}

// FactorialFloat returns n! as a float64.
// Returns 0 for negative n and +Inf for n > MaxFactorialFloat.
func FactorialFloat(n int) float64 {
	if n < 0 {
		return 0
	}
	if n > MaxFactorialFloat {
		return math.Inf(1)
	}
	return factorialTable[n]
}

// PowInt returns base^exp for integers, and false if the result overflows.
// Returns 0 for negative exponents, as integers are not closed under division.
func PowInt(base, exp int64) (int64, bool) {
	if exp < 0 {
		return 0, true
	}
	result := int64(1)
	var ok bool
	for {
		if exp&1 == 1 {
			if result, ok = MulInt64(result, base); !ok {
				return 0, false
			}
		}
		if exp >>= 1; exp == 0 {
			return result, true
		}
		if base, ok = MulInt64(base, base); !ok {
			return 0, false
		}
	}
}

// PowFloat returns base^exp for an integer exponent by square-and-multiply.
// A negative exponent yields 1/base^|exp|.
func PowFloat(base float64, exp int) float64 {
	mag := uint64(exp)
	if exp < 0 {
		mag = uint64(-exp)
	}
	result := 1.0
	for ; mag > 0; mag >>= 1 {
		if mag&1 == 1 {
			result *= base
		}
		base *= base
	}
	if exp < 0 {
		return 1 / result
	}
	return result
}

// GCD returns the greatest common divisor of |a| and |b| using Euclid's algorithm.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	a, b = AbsInt64(a), AbsInt64(b)
	if a < b {
		a, b = b, a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// AbsFloat returns |x|. Negative zero stays as is.
func AbsFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
