package main

import (
	"os"

	"patterns/cmd/expensetracker/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
