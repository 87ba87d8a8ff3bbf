// Package commands defines the stockticker CLI.
//
// The program is a single interactive loop:
//
//   - a   register a display for a stock name
//   - r   remove a stock and its displays
//   - s   set a stock price, notifying every display
//   - p   print current prices
//   - q   quit
//
// The root command loads configuration and builds the console and logger
// before the loop starts.
package commands
