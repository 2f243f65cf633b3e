// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"os"

	"github.com/avdva/numtower/cmd/numtower/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
