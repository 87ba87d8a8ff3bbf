// Package domain defines the records the three console programs work on and
// the contracts between their packages.
//
// Plain record types live in the types subpackage and contracts in the
// interfaces subpackage; both are re-exported here so callers import a single
// package. The error taxonomy shared by every program is declared in errors.go.
package domain
