// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package integer implements the integer set Z on top of machine-width integers.
package integer

import (
	"strconv"

	mu "github.com/avdva/numtower/internal/mathutil"
	"github.com/avdva/numtower/natural"
)

const (
	Zero = Integer(0)
	One  = Integer(1)
)

// Integer is a signed machine-width integer.
// Operations, which overflow an int64, panic with a domain error.
type Integer int64

// FromNatural converts a natural number into an integer.
func FromNatural(n natural.Natural) Integer {
	return Integer(n.Int64())
}

// Int64 returns z as an int64.
func (z Integer) Int64() int64 {
	return int64(z)
}

// Add returns z + other.
func (z Integer) Add(other Integer) Integer {
	return Integer(mu.Add("integer.Add", int64(z), int64(other)))
}

// Sub returns z - other.
func (z Integer) Sub(other Integer) Integer {
	return Integer(mu.Sub("integer.Sub", int64(z), int64(other)))
}

// Mul returns z * other.
func (z Integer) Mul(other Integer) Integer {
	return Integer(mu.Mul("integer.Mul", int64(z), int64(other)))
}

// Neg returns -z.
func (z Integer) Neg() Integer {
	return Integer(mu.Sub("integer.Neg", 0, int64(z)))
}

// Factorial returns z!, or 0 for a negative z. It panics for z > 20.
func (z Integer) Factorial() Integer {
	return Integer(mu.Fact("integer.Factorial", int64(z)))
}

// Pow returns z^exp.
func (z Integer) Pow(exp natural.Natural) Integer {
	return Integer(mu.Pow("integer.Pow", int64(z), exp.Int64()))
}

// Abs returns |z|.
func (z Integer) Abs() Integer {
	if z < 0 {
		return z.Neg()
	}
	return z
}

// Sign returns -1 if z < 0, 0 if z = 0, 1 if z > 0.
func (z Integer) Sign() int {
	return mu.Int64Sign(int64(z))
}

// Natural converts z into a natural number.
// Returns an error if z <= 0.
func (z Integer) Natural() (natural.Natural, error) {
	return natural.New(int64(z))
}

// Eq returns true if both numbers are equal.
func (z Integer) Eq(other Integer) bool {
	return z == other
}

// Cmp compares two numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (z Integer) Cmp(other Integer) int {
	switch {
	case z > other:
		return 1
	case z < other:
		return -1
	default:
		return 0
	}
}

// String returns a decimal representation of z.
func (z Integer) String() string {
	return strconv.FormatInt(int64(z), 10)
}
