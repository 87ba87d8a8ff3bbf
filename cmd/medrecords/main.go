package main

import (
	"os"

	"patterns/cmd/medrecords/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
