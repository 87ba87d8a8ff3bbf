// Package commands defines the medrecords CLI.
//
// It prints every patient in list order and every medic in reverse order
// through the selected visitor, either for the built-in records or for a YAML
// file given with --records.
package commands
