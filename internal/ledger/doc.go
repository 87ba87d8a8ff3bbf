// Package ledger is the expense tracker: an ordered list of transactions and
// the reports rendered from it.
//
// Reports follow a two-step template. Generator prints the fixed header and
// then hands the transactions to a BodyRenderer chosen by the caller, which
// renders line items and totals to the console or to a report file. Both
// renderers share one body writer, so the text is identical whatever the
// destination.
package ledger
