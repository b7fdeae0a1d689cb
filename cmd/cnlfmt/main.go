package main

import (
	"os"

	"github.com/edakit/cnlfmt/cmd/cnlfmt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
