// Package records lists patients and medics with cursors and visitors.
//
// A Cursor walks a slice forward or in reverse and has three states: not
// started, positioned on an element, and exhausted. Reading the current
// element outside the positioned state is an error. All adapts any cursor to a
// restartable iter.Seq.
//
// Records are wrapped as Elements that accept a Visitor, which has one method
// per record kind.
package records
