// Package update defines the value types that describe one batch of
// structural changes to a sectioned store: index paths, move pairs, and the
// Update accumulator that collects every change recorded between the start
// and end of a batch.
//
// Inserted, deleted, and updated positions are held as sets because a
// consumer applying them does not care about the order in which same-kind
// changes were recorded. Moves are held as ordered lists because the
// source/destination pairing must survive.
package update
