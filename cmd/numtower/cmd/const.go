// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/avdva/numtower/internal/render"
	"github.com/avdva/numtower/reals"
)

var constants = []struct {
	name  string
	value func() reals.Real
}{
	{"pi", reals.Pi},
	{"e", reals.E},
}

var constCmd = &cobra.Command{
	Use:       "const [pi|e]",
	Short:     "Print the series-computed constants",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"pi", "e"},
	RunE:      runConst,
}

func init() {
	rootCmd.AddCommand(constCmd)
}

func runConst(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	values := make(map[string]reals.Real)
	for _, c := range constants {
		if len(args) > 0 && args[0] != c.name {
			continue
		}
		values[c.name] = c.value()
		if !jsonOut {
			if _, err := fmt.Fprintf(out, "%s = %s\n", c.name, render.Real(c.value(), opts)); err != nil {
				return err
			}
		}
	}
	if jsonOut {
		return errors.Wrap(json.NewEncoder(out).Encode(values), "encoding constants")
	}
	return nil
}
