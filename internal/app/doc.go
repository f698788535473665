// Package app wires the storage engine into a terminal viewer: a TOML
// dataset loaded into the store, a tcell view consuming the store's diffs,
// an optional file watcher that reloads the dataset on change, and an
// optional Lua script run against the store at startup.
package app
