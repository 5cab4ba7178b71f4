package main

import (
	"os"

	"github.com/ledgible-dev/ledgible/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
