// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cmd implements the numtower command tree.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avdva/numtower/internal/render"
)

var (
	format    string
	precision int
	jsonOut   bool
	verbose   bool
)

var (
	logger = slog.Default()
	opts   = render.Options{Mode: render.ModePlain, Precision: -1}
)

var rootCmd = &cobra.Command{
	Use:   "numtower",
	Short: "numtower - natural, integer, rational, real and complex numbers",
	Long: `numtower evaluates functions over the numeric tower
natural ⊂ integer ⊂ rational ⊂ real ⊂ complex.

Literals:
  12        natural
  -12       integer
  6/8       rational
  2.5, 1e-3 real
  3-4i      complex
  pi, e, i  constants`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&format, "format", "plain", "output format: plain, fixed or decimal")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", -1, "number of fraction digits, negative means default")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	mode, err := render.ParseMode(format)
	if err != nil {
		return err
	}
	opts = render.Options{Mode: mode, Precision: precision}
	logger.Debug("output options", "format", mode, "precision", precision)
	return nil
}

// outputChanged returns true if any of the output flags was set on the command line.
func outputChanged(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	return flags.Changed("format") || flags.Changed("precision")
}
