// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"errors"
	"fmt"
)

// ErrDomain is the sentinel every DomainError unwraps to.
var ErrDomain = errors.New("domain violation")

// DomainError is the panic value of an operation, called with an argument
// outside of its domain, like a negative number under a square root.
type DomainError struct {
	Op  string
	Msg string
}

func (de *DomainError) Error() string {
	return de.Op + ": " + de.Msg
}

// Unwrap returns ErrDomain.
func (de *DomainError) Unwrap() error {
	return ErrDomain
}

// Domainf panics with a *DomainError for the operation op.
func Domainf(op, format string, args ...interface{}) {
	panic(&DomainError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// AsDomainError converts a recovered panic value into an error.
// Panics, which are not domain violations, are re-raised.
func AsDomainError(recovered interface{}) error {
	if recovered == nil {
		return nil
	}
	if de, ok := recovered.(*DomainError); ok {
		return de
	}
	panic(recovered)
}
