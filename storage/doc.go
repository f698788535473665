// Package storage implements an in-memory, ordered, sectioned data store
// that tracks incremental changes to its contents and reports a
// consolidated diff to a single observer after each batch of mutations. It
// backs list- and grid-style presentation surfaces without coupling the
// storage logic to any particular rendering layer.
//
// Every mutation runs inside a batch. Mutating methods open one implicitly
// when none is active; composite edits wrap a group of calls with
// PerformUpdates (or StartUpdate/FinishUpdate) so the observer sees one
// consolidated update.Update. Bulk replacement operations such as SetItems
// skip diffing and signal a full reload instead.
//
// The engine is single-threaded by design: mutations run synchronously to
// completion and it is not safe for concurrent use. Callers confine access
// to one goroutine or serialize it externally. The observer callback runs
// synchronously and must not call back into the mutation API.
package storage
