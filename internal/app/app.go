package app

import (
	"io"
	"os"
)

// IO is the set of streams a program runs on.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer // diagnostics and logs
}

// StdIO returns the process streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}
