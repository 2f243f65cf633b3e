// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"math"
	"math/bits"
)

// AddInt64 returns a+b, and false if the sum overflows.
func AddInt64(a, b int64) (int64, bool) {
	sum := a + b
	return sum, (sum > a) == (b > 0)
}

// SubInt64 returns a-b, and false if the difference overflows.
func SubInt64(a, b int64) (int64, bool) {
	diff := a - b
	return diff, (diff < a) == (b > 0)
}

// MulInt64 returns a*b, and false if the product overflows.
func MulInt64(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(absUint64(a), absUint64(b))
	if hi != 0 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		if lo > 1<<63 {
			return 0, false
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// CmpProducts compares a*b and c*d without overflow.
// Returns -1 if a*b < c*d, 0 if a*b == c*d, 1 if a*b > c*d.
func CmpProducts(a, b, c, d int64) int {
	s1, s2 := Int64Sign(a)*Int64Sign(b), Int64Sign(c)*Int64Sign(d)
	switch {
	case s1 < s2:
		return -1
	case s1 > s2:
		return 1
	case s1 == 0:
		return 0
	}
	hi1, lo1 := bits.Mul64(absUint64(a), absUint64(b))
	hi2, lo2 := bits.Mul64(absUint64(c), absUint64(d))
	var cmp int
	switch {
	case hi1 > hi2 || (hi1 == hi2 && lo1 > lo2):
		cmp = 1
	case hi1 < hi2 || (hi1 == hi2 && lo1 < lo2):
		cmp = -1
	}
	return cmp * s1
}

// Add returns a+b. On overflow it panics with a *DomainError for op.
func Add(op string, a, b int64) int64 {
	sum, ok := AddInt64(a, b)
	if !ok {
		Domainf(op, "integer overflow: %d + %d", a, b)
	}
	return sum
}

// Sub returns a-b. On overflow it panics with a *DomainError for op.
func Sub(op string, a, b int64) int64 {
	diff, ok := SubInt64(a, b)
	if !ok {
		Domainf(op, "integer overflow: %d - %d", a, b)
	}
	return diff
}

// Mul returns a*b. On overflow it panics with a *DomainError for op.
func Mul(op string, a, b int64) int64 {
	prod, ok := MulInt64(a, b)
	if !ok {
		Domainf(op, "integer overflow: %d * %d", a, b)
	}
	return prod
}

// Pow returns base^exp. On overflow it panics with a *DomainError for op.
func Pow(op string, base, exp int64) int64 {
	result, ok := PowInt(base, exp)
	if !ok {
		Domainf(op, "integer overflow: %d ^ %d", base, exp)
	}
	return result
}

// Fact returns n!. On overflow it panics with a *DomainError for op.
func Fact(op string, n int64) int64 {
	result, ok := Factorial(n)
	if !ok {
		Domainf(op, "integer overflow: %d!", n)
	}
	return result
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
