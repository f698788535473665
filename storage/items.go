package storage

import (
	"fmt"
	"sort"
)

// AddItem appends an item to the section at the given index, creating the
// section (and any before it) if needed.
func (e *Engine) AddItem(item any, sectionIndex int) {
	e.StartUpdate()
	defer e.FinishUpdate()

	s := e.growSections(sectionIndex, true)
	at := Path(sectionIndex, s.NumberOfItems())
	s.Append(item)
	e.pending.InsertItem(at)
}

// AddItems appends every item to the section at the given index,
// preserving input order.
func (e *Engine) AddItems(items []any, sectionIndex int) {
	e.StartUpdate()
	defer e.FinishUpdate()

	for _, item := range items {
		e.AddItem(item, sectionIndex)
	}
}

// InsertItem places an item at the given path, creating the target section
// if needed. Returns ErrIndexPathTooLarge if the path's item index exceeds
// the section's current item count; the section list may still have been
// extended in that case.
func (e *Engine) InsertItem(item any, at IndexPath) error {
	e.StartUpdate()
	defer e.FinishUpdate()

	s := e.growSections(at.Section, true)
	if at.Item < 0 || at.Item > s.NumberOfItems() {
		return fmt.Errorf("%w: %s with %d items", ErrIndexPathTooLarge, at, s.NumberOfItems())
	}
	s.Insert(item, at.Item)
	e.pending.InsertItem(at)
	return nil
}

// InsertItems places each item at its paired path. If the slices differ in
// length the whole call aborts with ErrCountMismatch and nothing is
// mutated. A pair whose item index exceeds the section's count at
// insertion time is skipped; the rest proceed.
func (e *Engine) InsertItems(items []any, at []IndexPath) error {
	if len(items) != len(at) {
		return fmt.Errorf("%w: %d items, %d paths", ErrCountMismatch, len(items), len(at))
	}

	e.StartUpdate()
	defer e.FinishUpdate()

	for i, item := range items {
		path := at[i]
		s := e.growSections(path.Section, true)
		if path.Item < 0 || path.Item > s.NumberOfItems() {
			e.diag("insert items: skipping %s, section has %d items", path, s.NumberOfItems())
			continue
		}
		s.Insert(item, path.Item)
		e.pending.InsertItem(path)
	}
	return nil
}

// ReloadItem records an updated-item entry for the given item without any
// structural change. Does nothing if the item is absent.
func (e *Engine) ReloadItem(item any) {
	e.StartUpdate()
	defer e.FinishUpdate()

	if at, ok := e.IndexPath(item); ok {
		e.pending.UpdateItem(at)
	}
}

// ReplaceItem swaps the first item equal to old for new, in place. Returns
// ErrItemNotFound if old is absent.
func (e *Engine) ReplaceItem(old, new any) error {
	e.StartUpdate()
	defer e.FinishUpdate()

	at, ok := e.IndexPath(old)
	if !ok {
		return fmt.Errorf("replace: %w", ErrItemNotFound)
	}
	e.sections[at.Section].Replace(at.Item, new)
	e.pending.UpdateItem(at)
	return nil
}

// RemoveItem removes the first item equal to the given one. Returns
// ErrItemNotFound if it is absent.
func (e *Engine) RemoveItem(item any) error {
	e.StartUpdate()
	defer e.FinishUpdate()

	at, ok := e.IndexPath(item)
	if !ok {
		return fmt.Errorf("remove: %w", ErrItemNotFound)
	}
	e.sections[at.Section].Remove(at.Item)
	e.pending.DeleteItem(at)
	return nil
}

// RemoveItems removes every given item that can be found; absent items are
// skipped silently. All paths are resolved against the pre-removal state,
// then removed highest-path-first so earlier removals cannot invalidate
// later ones.
func (e *Engine) RemoveItems(items []any) {
	e.StartUpdate()
	defer e.FinishUpdate()

	paths := make([]IndexPath, 0, len(items))
	seen := make(map[IndexPath]struct{}, len(items))
	for _, item := range items {
		at, ok := e.IndexPath(item)
		if !ok {
			continue
		}
		if _, dup := seen[at]; dup {
			continue
		}
		seen[at] = struct{}{}
		paths = append(paths, at)
	}
	e.removeAtPaths(paths)
}

// RemoveItemsAt removes the items at the given paths; paths pointing at
// nothing are skipped silently. Removal runs highest-path-first.
func (e *Engine) RemoveItemsAt(paths []IndexPath) {
	e.StartUpdate()
	defer e.FinishUpdate()

	unique := make([]IndexPath, 0, len(paths))
	seen := make(map[IndexPath]struct{}, len(paths))
	for _, at := range paths {
		if _, dup := seen[at]; dup {
			continue
		}
		seen[at] = struct{}{}
		unique = append(unique, at)
	}
	e.removeAtPaths(unique)
}

// removeAtPaths removes items in descending path order, recording each
// deletion at its original path. Callers pass deduplicated paths resolved
// against the current state.
func (e *Engine) removeAtPaths(paths []IndexPath) {
	sort.Slice(paths, func(i, j int) bool { return paths[j].Less(paths[i]) })
	for _, at := range paths {
		s, ok := e.SectionAt(at.Section)
		if !ok || at.Item < 0 || at.Item >= s.NumberOfItems() {
			continue
		}
		s.Remove(at.Item)
		e.pending.DeleteItem(at)
	}
}

// RemoveAllItemsInSection clears the section at the given index, recording
// one deleted-item entry per removed item. No-op if the section is absent.
func (e *Engine) RemoveAllItemsInSection(sectionIndex int) {
	e.StartUpdate()
	defer e.FinishUpdate()

	s, ok := e.SectionAt(sectionIndex)
	if !ok {
		return
	}
	for i := 0; i < s.NumberOfItems(); i++ {
		e.pending.DeleteItem(Path(sectionIndex, i))
	}
	s.Clear()
}

// MoveItem moves the item at from to the to position. The destination
// section is created if needed. If the source item does not exist or the
// destination item index exceeds the destination section's current count,
// the move is abandoned with only a diagnostic trace.
func (e *Engine) MoveItem(from, to IndexPath) {
	e.StartUpdate()
	defer e.FinishUpdate()

	item, ok := e.Item(from)
	if !ok {
		e.diag("move item: no item at source %s", from)
		return
	}
	dst := e.growSections(to.Section, true)
	if to.Item < 0 || to.Item > dst.NumberOfItems() {
		e.diag("move item: destination %s exceeds %d items", to, dst.NumberOfItems())
		return
	}

	e.sections[from.Section].Remove(from.Item)
	// A same-section move past the vacated slot lands at the new end.
	insertAt := to.Item
	if insertAt > dst.NumberOfItems() {
		insertAt = dst.NumberOfItems()
	}
	dst.Insert(item, insertAt)
	e.pending.MoveItem(from, to)
}

// SetItems replaces the whole contents of the section at the given index,
// creating it if needed. This is total replacement: no diff is recorded
// and the observer is told to reload everything.
func (e *Engine) SetItems(items []any, sectionIndex int) {
	s := e.growSections(sectionIndex, false)
	s.Clear()
	for _, item := range items {
		s.Append(item)
	}
	e.reloadAll()
}
