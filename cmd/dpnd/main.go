package main

import (
	"os"

	"github.com/eZanmoto/dpnd/cmd/dpnd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
