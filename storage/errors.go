package storage

import "errors"

// Errors returned by engine mutations.
var (
	// ErrIndexPathTooLarge indicates an insertion path whose item index
	// exceeds the target section's current item count.
	ErrIndexPathTooLarge = errors.New("index path exceeds section item count")

	// ErrCountMismatch indicates parallel item and path slices of
	// different lengths.
	ErrCountMismatch = errors.New("items and index paths differ in count")

	// ErrItemNotFound indicates the target item is not present in any
	// section.
	ErrItemNotFound = errors.New("item not found")
)
