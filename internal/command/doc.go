// Package command turns the stock ticker into an interactive program.
//
// Each console action is a Command object bound to the store it mutates; a
// Commander invokes them and the stock menu maps single-letter tokens to the
// Commander, plus the built-in print and quit actions.
package command
