// Package store replaces files on disk atomically.
//
// Content is streamed into a hidden temporary sibling, flushed, synced and
// renamed over the target. A failed export leaves the previous file intact.
package store
