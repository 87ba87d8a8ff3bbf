package main

import (
	"os"

	"patterns/cmd/stockticker/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
