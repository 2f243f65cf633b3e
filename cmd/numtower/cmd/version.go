// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/avdva/numtower/reals"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "numtower v%s\n", Version)
		fmt.Fprintf(out, "  Git Commit:    %s\n", GitCommit)
		fmt.Fprintf(out, "  Series length: %d\n", reals.SeriesLength)
		fmt.Fprintf(out, "  Go Version:    %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
