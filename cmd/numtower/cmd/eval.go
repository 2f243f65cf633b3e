// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/avdva/numtower"
	"github.com/avdva/numtower/internal/render"
)

var evalCmd = &cobra.Command{
	Use:   "eval FUNC [ARGS...] | eval LITERAL",
	Short: "Evaluate a function, or classify a literal",
	Long: `Evaluate a named function over the tower, or print the set of a single literal.
Flags must precede FUNC, so negative arguments are not taken for flags:

  numtower eval --format decimal div 1 3
  numtower eval sqrt -4
  numtower eval 6/8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(evalCmd)
}

type evalResult struct {
	Func  string          `json:"func,omitempty"`
	Args  []string        `json:"args"`
	Set   string          `json:"set"`
	Value numtower.Number `json:"value"`
}

func runEval(cmd *cobra.Command, args []string) error {
	res := evalResult{Args: args}
	if len(args) == 1 && numtower.Arity(args[0]) < 0 {
		n, err := numtower.Parse(args[0])
		if err != nil {
			return errors.Wrapf(err, "literal %q", args[0])
		}
		res.Value = n
	} else {
		res.Func, res.Args = strings.ToLower(args[0]), args[1:]
		values := make([]numtower.Number, 0, len(res.Args))
		for _, arg := range res.Args {
			n, err := numtower.Parse(arg)
			if err != nil {
				return errors.Wrapf(err, "argument %q", arg)
			}
			values = append(values, n)
		}
		n, err := numtower.Apply(res.Func, values...)
		if err != nil {
			return err
		}
		res.Value = n
	}
	res.Set = numtower.SetOf(res.Value).String()
	logger.Debug("evaluated", "func", res.Func, "args", res.Args, "set", res.Set)
	out := cmd.OutOrStdout()
	if jsonOut {
		return errors.Wrap(json.NewEncoder(out).Encode(res), "encoding result")
	}
	if res.Func == "" {
		_, err := fmt.Fprintf(out, "%s %s\n", res.Set, render.Number(res.Value, opts))
		return err
	}
	_, err := fmt.Fprintln(out, render.Number(res.Value, opts))
	return err
}
