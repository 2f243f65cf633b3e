// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package natural implements natural numbers N = {1, 2, 3, ...} on top of machine-width integers.
package natural

import (
	"encoding/json"
	"fmt"
	"strconv"

	mu "github.com/avdva/numtower/internal/mathutil"
)

var (
	// One is the smallest natural number.
	One Natural

	errNotPositive = fmt.Errorf("natural number must be greater than zero")
)

// Natural is a positive integer.
// It stores n-1, so that the zero value of the type is 1, a valid natural number.
// Operations, which overflow an int64, panic with a domain error.
type Natural struct {
	biased int64
}

func fromInt64(n int64) Natural {
	return Natural{biased: n - 1}
}

// New returns a natural number for n.
// Returns an error if n <= 0.
func New(n int64) (Natural, error) {
	if n <= 0 {
		return One, errNotPositive
	}
	return fromInt64(n), nil
}

// MustNew is like New, but panics if n <= 0.
func MustNew(n int64) Natural {
	result, err := New(n)
	if err != nil {
		panic(err)
	}
	return result
}

// Int64 returns n as an int64.
func (n Natural) Int64() int64 {
	return n.biased + 1
}

// Add returns n + other.
func (n Natural) Add(other Natural) Natural {
	return fromInt64(mu.Add("natural.Add", n.Int64(), other.Int64()))
}

// Mul returns n * other.
func (n Natural) Mul(other Natural) Natural {
	return fromInt64(mu.Mul("natural.Mul", n.Int64(), other.Int64()))
}

// Factorial returns n!. It panics for n > 20.
func (n Natural) Factorial() Natural {
	return fromInt64(mu.Fact("natural.Factorial", n.Int64()))
}

// Pow returns n^exp.
func (n Natural) Pow(exp Natural) Natural {
	return fromInt64(mu.Pow("natural.Pow", n.Int64(), exp.Int64()))
}

// Eq returns true if both numbers are equal.
func (n Natural) Eq(other Natural) bool {
	return n == other
}

// Cmp compares two numbers.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (n Natural) Cmp(other Natural) int {
	switch {
	case n.biased > other.biased:
		return 1
	case n.biased < other.biased:
		return -1
	default:
		return 0
	}
}

// IsEven returns true for 2, 4, 6, ...
func (n Natural) IsEven() bool {
	return n.biased%2 != 0
}

// String returns a decimal representation of n.
func (n Natural) String() string {
	return strconv.FormatInt(n.Int64(), 10)
}

// MarshalJSON marshals n as a json number.
func (n Natural) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalJSON unmarshals a json number into n.
// Returns an error for non-positive values.
func (n *Natural) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	value, err := New(v)
	if err != nil {
		return err
	}
	*n = value
	return nil
}
