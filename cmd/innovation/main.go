package main

import (
	"os"

	"github.com/alexshd/innovation/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
