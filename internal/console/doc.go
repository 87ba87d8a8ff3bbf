// Package console is the text I/O port every program talks through.
//
// A Console wraps an io.Reader and an io.Writer so that tests can script
// input and capture output. Menu runs the read-dispatch-print loop shared by
// the interactive programs: it reads one token per line, runs the matching
// action and reports recoverable errors without leaving the loop.
package console
