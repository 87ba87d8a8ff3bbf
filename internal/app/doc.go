// Package app wires runtime dependencies for the console programs.
//
// It loads Config from an optional YAML or TOML file, validates it, and builds
// the console port and logger from it, exposing them via the Wire struct for
// commands to use.
package app
