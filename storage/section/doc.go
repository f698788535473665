// Package section implements the ordered item container that the storage
// engine composes into a sectioned store. A Section holds an ordered list
// of opaque items plus supplementary payloads (header/footer-like data)
// keyed by kind and slot.
//
// Bounds checking for the mutating operations is the owning engine's
// contract: the engine validates positions before calling, so an
// out-of-range position here is a programmer error and panics.
package section
