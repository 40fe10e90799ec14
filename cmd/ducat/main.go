package main

import (
	"os"

	"ducat/cmd/ducat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
