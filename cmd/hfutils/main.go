package main

import (
	"os"

	"github.com/HF7weatherman/hfutils/cmd/hfutils/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
