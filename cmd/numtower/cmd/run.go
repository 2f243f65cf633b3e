// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/avdva/numtower/internal/batch"
	"github.com/avdva/numtower/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a batch file",
	Long: `Run the steps of a TOML or YAML batch file.
The file format is picked by the extension: .yaml and .yml are YAML, anything else is TOML.
The output settings of the file are used, unless --format or --precision are given.

  [settings]
  format = "decimal"
  precision = 4

  [[steps]]
  name = "third"
  func = "div"
  args = ["1", "3"]
  expect = "1/3"`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

type stepResult struct {
	Step   string `json:"step"`
	Value  string `json:"value,omitempty"`
	Error  string `json:"error,omitempty"`
	Passed *bool  `json:"passed,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := batch.Load(args[0])
	if err != nil {
		return err
	}
	ro := opts
	if !outputChanged(cmd) {
		ro = f.Options()
	}
	logger.Debug("running batch", "file", args[0], "steps", len(f.Steps), "format", ro.Mode)
	results := batch.Run(f)
	var failed int
	for _, res := range results {
		if res.Failed() {
			failed++
			logger.Debug("step failed", "step", res.Step.Title(), "err", res.Err)
		}
	}
	out := cmd.OutOrStdout()
	if jsonOut {
		err = writeResultsJSON(out, results, ro)
	} else {
		err = writeResults(out, results, ro)
	}
	if err != nil {
		return err
	}
	logger.Info("batch finished", "file", args[0], "steps", len(results), "failed", failed)
	if failed > 0 {
		return errors.Errorf("%d of %d steps failed", failed, len(results))
	}
	return nil
}

func writeResults(w io.Writer, results []batch.Result, ro render.Options) error {
	for _, res := range results {
		var err error
		switch {
		case res.Value == nil:
			_, err = fmt.Fprintf(w, "%s: error: %v\n", res.Step.Title(), res.Err)
		case res.Err != nil:
			_, err = fmt.Fprintf(w, "%s = %s error: %v\n", res.Step.Title(), render.Number(res.Value, ro), res.Err)
		case !res.Checked:
			_, err = fmt.Fprintf(w, "%s = %s\n", res.Step.Title(), render.Number(res.Value, ro))
		case res.Passed:
			_, err = fmt.Fprintf(w, "%s = %s ok\n", res.Step.Title(), render.Number(res.Value, ro))
		default:
			_, err = fmt.Fprintf(w, "%s = %s FAIL (expected %s)\n", res.Step.Title(), render.Number(res.Value, ro), res.Step.Expect)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeResultsJSON(w io.Writer, results []batch.Result, ro render.Options) error {
	out := make([]stepResult, 0, len(results))
	for _, res := range results {
		sr := stepResult{Step: res.Step.Title()}
		if res.Value != nil {
			sr.Value = render.Number(res.Value, ro)
		}
		if res.Err != nil {
			sr.Error = res.Err.Error()
		}
		if res.Checked {
			passed := res.Passed
			sr.Passed = &passed
		}
		out = append(out, sr)
	}
	return errors.Wrap(json.NewEncoder(w).Encode(out), "encoding results")
}
