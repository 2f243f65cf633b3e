// Copyright 2020 Aleksandr Demakin. All rights reserved.

package batch

import (
	"github.com/pkg/errors"

	"github.com/avdva/numtower"
	"github.com/avdva/numtower/reals"
)

// Result is the outcome of a step.
type Result struct {
	Step  Step
	Value numtower.Number
	// Err is set if the step could not be evaluated.
	Err error
	// Checked is true if the step had an expected value.
	Checked bool
	// Passed is true if the value matched the expected one.
	Passed bool
}

// Failed returns true if the step could not be evaluated, or its result did not match.
func (r Result) Failed() bool {
	return r.Err != nil || (r.Checked && !r.Passed)
}

// Run evaluates all the steps. A failing step does not stop the batch.
func Run(f *File) []Result {
	results := make([]Result, 0, len(f.Steps))
	for i, step := range f.Steps {
		res := Result{Step: step}
		res.Value, res.Err = evaluate(step)
		if res.Err != nil {
			res.Err = errors.Wrapf(res.Err, "step %d", i+1)
		} else if step.Expect != "" {
			res.Checked = true
			res.Passed, res.Err = matches(res.Value, step.Expect, step.Tolerance)
		}
		results = append(results, res)
	}
	return results
}

func evaluate(step Step) (numtower.Number, error) {
	args := make([]numtower.Number, 0, len(step.Args))
	for _, s := range step.Args {
		arg, err := numtower.Parse(s)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q", s)
		}
		args = append(args, arg)
	}
	return numtower.Apply(step.Func, args...)
}

// matches compares value to the expected literal.
// For a positive tolerance |value - expected| is compared to the tolerance.
func matches(value numtower.Number, expect string, tolerance float64) (bool, error) {
	expected, err := numtower.Parse(expect)
	if err != nil {
		return false, errors.Wrap(err, "expected value")
	}
	if tolerance == 0 {
		return numtower.Equal(value, expected), nil
	}
	diff, err := numtower.Apply("sub", value, expected)
	if err != nil {
		return false, err
	}
	dist, err := numtower.Apply("abs", diff)
	if err != nil {
		return false, err
	}
	d, err := numtower.Promote(dist, numtower.SetReal)
	if err != nil {
		return false, err
	}
	return d.(reals.Real) <= reals.Real(tolerance), nil
}
