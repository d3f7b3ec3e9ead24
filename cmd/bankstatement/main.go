package main

import (
	"os"

	"github.com/martin-ueding/bank-statement-parser/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
