// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numtower

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/avdva/numtower/cplx"
	"github.com/avdva/numtower/integer"
	mu "github.com/avdva/numtower/internal/mathutil"
	"github.com/avdva/numtower/natural"
	"github.com/avdva/numtower/rational"
	"github.com/avdva/numtower/reals"
)

var (
	// ErrUnknownFunction is returned by Apply for names it does not know.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrUnsupported is returned by Apply, if a function is not defined for the set of its arguments.
	ErrUnsupported = errors.New("unsupported argument")
)

type function struct {
	arity int
	eval  func(args []Number) (Number, error)
}

var functions = map[string]function{
	"add":        {2, arithmetic(natural.Natural.Add, integer.Integer.Add, rational.Rational.Add, reals.Real.Add, cplx.Complex.Add)},
	"sub":        {2, arithmetic(nil, integer.Integer.Sub, rational.Rational.Sub, reals.Real.Sub, cplx.Complex.Sub)},
	"mul":        {2, arithmetic(natural.Natural.Mul, integer.Integer.Mul, rational.Rational.Mul, reals.Real.Mul, cplx.Complex.Mul)},
	"div":        {2, arithmetic(nil, nil, rational.Rational.Div, reals.Real.Div, cplx.Complex.Div)},
	"neg":        {1, neg},
	"abs":        {1, abs},
	"pow":        {2, pow},
	"factorial":  {1, factorial},
	"reduce":     {1, reduce},
	"sin":        {1, analytic(reals.Sin, cplx.Complex.Sin)},
	"cos":        {1, analytic(reals.Cos, cplx.Complex.Cos)},
	"tan":        {1, analytic(reals.Tan, cplx.Complex.Tan)},
	"exp":        {1, analytic(reals.Exp, cplx.Complex.Exp)},
	"asin":       {1, analytic(reals.Asin, nil)},
	"acos":       {1, analytic(reals.Acos, nil)},
	"atan":       {1, analytic(reals.Atan, nil)},
	"sinh":       {1, analytic(reals.Sinh, nil)},
	"cosh":       {1, analytic(reals.Cosh, nil)},
	"tanh":       {1, analytic(reals.Tanh, nil)},
	"atanh":      {1, analytic(reals.Atanh, nil)},
	"log":        {1, analytic(reals.Log, nil)},
	"log2":       {1, analytic(reals.Log2, nil)},
	"log10":      {1, analytic(reals.Log10, nil)},
	"sqrt":       {1, analytic(reals.Sqrt, nil)},
	"curt":       {1, analytic(reals.Curt, nil)},
	"square":     {1, analytic(reals.Square, nil)},
	"ceil":       {1, analytic(reals.Ceil, nil)},
	"floor":      {1, analytic(reals.Floor, nil)},
	"round":      {1, analytic(reals.Round, nil)},
	"intpart":    {1, analytic(reals.IntPart, nil)},
	"decpart":    {1, analytic(reals.DecPart, nil)},
	"sign":       {1, analytic(reals.Sign, nil)},
	"degrees":    {1, analytic(reals.ToDegrees, nil)},
	"radians":    {1, analytic(reals.ToRadians, nil)},
	"atan2":      {2, binaryReal(reals.Atan2)},
	"hypot":      {2, binaryReal(reals.Hypot)},
	"fmod":       {2, binaryReal(reals.Fmod)},
	"max":        {2, binaryReal(reals.Max)},
	"min":        {2, binaryReal(reals.Min)},
	"ithrt":      {2, ithrt},
	"conj":       {1, complexOnly(cplx.Complex.Conjugated)},
	"reciprocal": {1, complexOnly(cplx.Complex.Reciprocal)},
	"mag":        {1, complexPart(cplx.Complex.Mag)},
	"arg":        {1, complexPart(cplx.Complex.Arg)},
	"re":         {1, complexPart(func(c cplx.Complex) reals.Real { return c.Re })},
	"im":         {1, complexPart(func(c cplx.Complex) reals.Real { return c.Im })},
}

// Functions returns the sorted list of function names Apply knows.
func Functions() []string {
	result := make([]string, 0, len(functions))
	for name := range functions {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Arity returns the number of arguments the function takes, or -1 for unknown functions.
func Arity(name string) int {
	fn, found := functions[strings.ToLower(name)]
	if !found {
		return -1
	}
	return fn.arity
}

// Apply evaluates the named function.
// Arguments are promoted to the sets the function is defined for, for instance
// sqrt(natural 2) is evaluated on reals, and add(3/4, 1.5) on reals as well.
// Domain violations are returned as errors, which satisfy errors.Is(err, ErrDomain).
func Apply(name string, args ...Number) (result Number, err error) {
	fn, found := functions[strings.ToLower(name)]
	if !found {
		return nil, fmt.Errorf("%w %q", ErrUnknownFunction, name)
	}
	if len(args) != fn.arity {
		return nil, fmt.Errorf("%s: expected %d argument(s), got %d", name, fn.arity, len(args))
	}
	for _, arg := range args {
		if SetOf(arg) == SetUnknown {
			return nil, fmt.Errorf("%s: %w %T", name, ErrUnsupported, arg)
		}
	}
	defer func() {
		if de := mu.AsDomainError(recover()); de != nil {
			result, err = nil, fmt.Errorf("%s: %w", name, de)
		}
	}()
	result, err = fn.eval(args)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
	}
	return result, err
}

func unsupported(n Number) error {
	return fmt.Errorf("%w: %s number %s", ErrUnsupported, SetOf(n), n)
}

// arithmetic returns a binary operation, which promotes both arguments to the same set.
// Nil operations are delegated to the next set, like natural subtraction to integers.
func arithmetic(
	n func(natural.Natural, natural.Natural) natural.Natural,
	z func(integer.Integer, integer.Integer) integer.Integer,
	q func(rational.Rational, rational.Rational) rational.Rational,
	r func(reals.Real, reals.Real) reals.Real,
	c func(cplx.Complex, cplx.Complex) cplx.Complex,
) func(args []Number) (Number, error) {
	return func(args []Number) (Number, error) {
		a, b, err := Unify(args[0], args[1])
		if err != nil {
			return nil, err
		}
		for {
			switch va := a.(type) {
			case natural.Natural:
				if n != nil {
					return n(va, b.(natural.Natural)), nil
				}
			case integer.Integer:
				if z != nil {
					return z(va, b.(integer.Integer)), nil
				}
			case rational.Rational:
				return q(va, b.(rational.Rational)), nil
			case reals.Real:
				return r(va, b.(reals.Real)), nil
			case cplx.Complex:
				return c(va, b.(cplx.Complex)), nil
			}
			a, b = promoteOnce(a), promoteOnce(b)
		}
	}
}

// analytic returns a function of one argument, evaluated on reals,
// or on complex numbers if c is not nil.
func analytic(r func(reals.Real) reals.Real, c func(cplx.Complex) cplx.Complex) func(args []Number) (Number, error) {
	return func(args []Number) (Number, error) {
		if v, ok := args[0].(cplx.Complex); ok {
			if c == nil {
				return nil, unsupported(v)
			}
			return c(v), nil
		}
		x, err := toReal(args[0])
		if err != nil {
			return nil, err
		}
		return r(x), nil
	}
}

func binaryReal(r func(reals.Real, reals.Real) reals.Real) func(args []Number) (Number, error) {
	return func(args []Number) (Number, error) {
		x, err := toReal(args[0])
		if err != nil {
			return nil, err
		}
		y, err := toReal(args[1])
		if err != nil {
			return nil, err
		}
		return r(x, y), nil
	}
}

func complexOnly(c func(cplx.Complex) cplx.Complex) func(args []Number) (Number, error) {
	return func(args []Number) (Number, error) {
		v, err := toComplex(args[0])
		if err != nil {
			return nil, err
		}
		return c(v), nil
	}
}

func complexPart(c func(cplx.Complex) reals.Real) func(args []Number) (Number, error) {
	return func(args []Number) (Number, error) {
		v, err := toComplex(args[0])
		if err != nil {
			return nil, err
		}
		return c(v), nil
	}
}

func toReal(n Number) (reals.Real, error) {
	if SetOf(n) > SetReal {
		return reals.Zero, unsupported(n)
	}
	p, err := Promote(n, SetReal)
	if err != nil {
		return reals.Zero, err
	}
	return p.(reals.Real), nil
}

func toComplex(n Number) (cplx.Complex, error) {
	p, err := Promote(n, SetComplex)
	if err != nil {
		return cplx.Zero, err
	}
	return p.(cplx.Complex), nil
}

func neg(args []Number) (Number, error) {
	switch v := args[0].(type) {
	case natural.Natural:
		return integer.FromNatural(v).Neg(), nil
	case integer.Integer:
		return v.Neg(), nil
	case rational.Rational:
		return v.Neg(), nil
	case reals.Real:
		return v.Neg(), nil
	case cplx.Complex:
		return v.Scale(-1), nil
	}
	return nil, unsupported(args[0])
}

func abs(args []Number) (Number, error) {
	switch v := args[0].(type) {
	case natural.Natural:
		return v, nil
	case integer.Integer:
		return v.Abs(), nil
	case rational.Rational:
		return v.Abs(), nil
	case reals.Real:
		return reals.Abs(v), nil
	case cplx.Complex:
		return v.Mag(), nil
	}
	return nil, unsupported(args[0])
}

func reduce(args []Number) (Number, error) {
	if q, ok := args[0].(rational.Rational); ok {
		return q.Reduce(), nil
	}
	return args[0], nil
}

// factorial is exact for arguments up to mu.MaxFactorial, and a real number after that.
func factorial(args []Number) (Number, error) {
	switch v := args[0].(type) {
	case natural.Natural:
		if v.Int64() > mu.MaxFactorial {
			return reals.Factorial(integer.FromNatural(v)), nil
		}
		return v.Factorial(), nil
	case integer.Integer:
		switch {
		case v < 0:
			mu.Domainf("factorial", "negative argument %d", v)
		case v > mu.MaxFactorial:
			return reals.Factorial(v), nil
		}
		return v.Factorial(), nil
	}
	return nil, unsupported(args[0])
}

// pow keeps the result in the set of the base, if the exponent allows it.
func pow(args []Number) (Number, error) {
	for _, arg := range args {
		if SetOf(arg) == SetComplex {
			return nil, unsupported(arg)
		}
	}
	base, exp := args[0], args[1]
	switch b := base.(type) {
	case natural.Natural:
		if e, ok := exp.(natural.Natural); ok {
			return b.Pow(e), nil
		}
	case integer.Integer:
		if e, ok := exp.(natural.Natural); ok {
			return b.Pow(e), nil
		}
	case rational.Rational:
		switch e := exp.(type) {
		case natural.Natural:
			return b.Pow(integer.FromNatural(e)), nil
		case integer.Integer:
			if e >= 0 {
				return b.Pow(e), nil
			}
		}
	}
	r, err := toReal(base)
	if err != nil {
		return nil, err
	}
	switch e := exp.(type) {
	case natural.Natural:
		return reals.PowNatural(r, e), nil
	case integer.Integer:
		return reals.PowInteger(r, e), nil
	case rational.Rational:
		return reals.PowRational(r, e), nil
	case reals.Real:
		return reals.Pow(r, e), nil
	}
	return nil, unsupported(exp)
}

func ithrt(args []Number) (Number, error) {
	x, err := toReal(args[0])
	if err != nil {
		return nil, err
	}
	var n natural.Natural
	switch v := args[1].(type) {
	case natural.Natural:
		n = v
	case integer.Integer:
		if n, err = v.Natural(); err != nil {
			return nil, fmt.Errorf("root degree: %w", err)
		}
	default:
		return nil, unsupported(v)
	}
	return reals.Ithrt(x, n), nil
}
