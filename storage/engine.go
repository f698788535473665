package storage

import (
	"reflect"

	"github.com/dshills/gridstorm/storage/section"
	"github.com/dshills/gridstorm/storage/update"
)

// Re-export commonly used types for convenience.
type (
	// IndexPath identifies one item's (section, item) position.
	IndexPath = update.IndexPath

	// Update is the consolidated diff for one batch.
	Update = update.Update

	// Section is an ordered item container with supplementary payloads.
	Section = section.Section
)

// Path is a convenience constructor for an IndexPath.
func Path(sectionIndex, itemIndex int) IndexPath {
	return update.Path(sectionIndex, itemIndex)
}

// Engine owns the ordered list of sections and exposes the full mutation
// API. See the package documentation for the batching and concurrency
// contract.
type Engine struct {
	sections []*section.Section
	observer Observer

	headerKind string
	footerKind string

	equal func(a, b any) bool
	diagf func(format string, args ...any)

	batchDepth int
	pending    *update.Update
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		equal: func(a, b any) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetObserver registers the observer notified at the close of each batch.
// The engine shares the observer; it does not control its lifetime.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// StartUpdate opens a batch if none is active. Re-entrant calls while a
// batch is open collapse into the same accumulator, so composite edits can
// call simpler primitives without triggering premature notification. Every
// StartUpdate must be matched by a FinishUpdate.
func (e *Engine) StartUpdate() {
	if e.batchDepth == 0 {
		e.pending = update.New()
	}
	e.batchDepth++
}

// FinishUpdate closes the innermost open batch. When the outermost batch
// closes, the accumulated update is handed to the observer and discarded.
// Batches that recorded no change do not notify. Calling without a
// matching StartUpdate is a no-op.
func (e *Engine) FinishUpdate() {
	if e.batchDepth == 0 {
		return
	}
	e.batchDepth--
	if e.batchDepth > 0 {
		return
	}
	u := e.pending
	e.pending = nil
	if u == nil || u.IsEmpty() {
		return
	}
	if e.observer != nil {
		e.observer.ApplyUpdate(u)
	}
}

// PerformUpdates runs fn inside one batch, so that every mutation it makes
// is consolidated into a single observer notification.
func (e *Engine) PerformUpdates(fn func()) {
	e.StartUpdate()
	defer e.FinishUpdate()
	fn()
}

// GetOrCreateSection returns the section at the given index, appending
// empty sections for every index from the current count through it if
// needed. Each newly created section is recorded as an inserted section.
func (e *Engine) GetOrCreateSection(index int) *section.Section {
	e.StartUpdate()
	defer e.FinishUpdate()
	return e.growSections(index, true)
}

// growSections extends the section list through index, returning the
// section there. With record set, each appended section is added to the
// pending update; the reload-signalling operations grow silently.
func (e *Engine) growSections(index int, record bool) *section.Section {
	for len(e.sections) <= index {
		s := section.New()
		s.SetOwner(e)
		if record && e.pending != nil {
			e.pending.InsertSection(len(e.sections))
		}
		e.sections = append(e.sections, s)
	}
	return e.sections[index]
}

// SectionCount returns the number of sections.
func (e *Engine) SectionCount() int {
	return len(e.sections)
}

// TotalNumberOfItems returns the item count summed across all sections.
func (e *Engine) TotalNumberOfItems() int {
	total := 0
	for _, s := range e.sections {
		total += s.NumberOfItems()
	}
	return total
}

// SectionAt returns the section at the given index, or false if the index
// is out of range.
func (e *Engine) SectionAt(index int) (*section.Section, bool) {
	if index < 0 || index >= len(e.sections) {
		return nil, false
	}
	return e.sections[index], true
}

// SectionIndex returns the current index of the given section. The lookup
// is identity-based: two sections with identical contents are still
// distinguished by their identity tokens.
func (e *Engine) SectionIndex(s *section.Section) (int, bool) {
	if s == nil {
		return 0, false
	}
	for i, candidate := range e.sections {
		if candidate == s || candidate.ID() == s.ID() {
			return i, true
		}
	}
	return 0, false
}

// Reset discards every section and signals a full reload.
func (e *Engine) Reset() {
	for _, s := range e.sections {
		s.SetOwner(nil)
	}
	e.sections = nil
	e.reloadAll()
}

// reloadAll signals the observer that the entire dataset should be treated
// as new. Reload-path operations never also record a diff.
func (e *Engine) reloadAll() {
	if e.observer != nil {
		e.observer.ReloadAll()
	}
}

// diag emits an optional diagnostic trace for silently abandoned
// operations.
func (e *Engine) diag(format string, args ...any) {
	if e.diagf != nil {
		e.diagf(format, args...)
	}
}
