// Package commands defines the expensetracker CLI.
//
// The program is a numbered menu over an in-memory transaction list. Reports
// go to the console or to a text file (report.txt unless --report or the
// config file say otherwise); the file is replaced on every export.
package commands
