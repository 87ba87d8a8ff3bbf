// Package ticker holds the stock price table and fans out price changes to
// registered listeners.
//
// Prices are keyed by stock name and kept in insertion order. A change is only
// accepted, and only then published, when a name is new or its price differs
// from the stored one. Listeners are registered under a stock name so that
// removing the stock also removes its listeners.
package ticker
