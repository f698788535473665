package update

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Update accumulates every structural change recorded during one batch of
// mutations. It is pure data: the storage engine records into it while a
// batch is open, then hands it to the observer exactly once when the batch
// closes.
type Update struct {
	insertedSections map[int]struct{}
	deletedSections  map[int]struct{}

	insertedItems map[IndexPath]struct{}
	deletedItems  map[IndexPath]struct{}
	updatedItems  map[IndexPath]struct{}

	sectionMoves []SectionMove
	itemMoves    []Move
}

// New returns an empty Update.
func New() *Update {
	return &Update{
		insertedSections: make(map[int]struct{}),
		deletedSections:  make(map[int]struct{}),
		insertedItems:    make(map[IndexPath]struct{}),
		deletedItems:     make(map[IndexPath]struct{}),
		updatedItems:     make(map[IndexPath]struct{}),
	}
}

// InsertSection records a section inserted at the given index.
func (u *Update) InsertSection(index int) {
	u.insertedSections[index] = struct{}{}
}

// DeleteSection records a section deleted from the given index.
func (u *Update) DeleteSection(index int) {
	u.deletedSections[index] = struct{}{}
}

// InsertItem records an item inserted at the given path.
func (u *Update) InsertItem(at IndexPath) {
	u.insertedItems[at] = struct{}{}
}

// DeleteItem records an item deleted from the given path.
func (u *Update) DeleteItem(at IndexPath) {
	u.deletedItems[at] = struct{}{}
}

// UpdateItem records an in-place reload or replacement of the item at the
// given path.
func (u *Update) UpdateItem(at IndexPath) {
	u.updatedItems[at] = struct{}{}
}

// MoveSection records a section moving between two indices.
func (u *Update) MoveSection(from, to int) {
	u.sectionMoves = append(u.sectionMoves, SectionMove{From: from, To: to})
}

// MoveItem records an item moving between two index paths.
func (u *Update) MoveItem(from, to IndexPath) {
	u.itemMoves = append(u.itemMoves, Move{From: from, To: to})
}

// IsEmpty reports whether no change of any kind has been recorded.
func (u *Update) IsEmpty() bool {
	return len(u.insertedSections) == 0 &&
		len(u.deletedSections) == 0 &&
		len(u.insertedItems) == 0 &&
		len(u.deletedItems) == 0 &&
		len(u.updatedItems) == 0 &&
		len(u.sectionMoves) == 0 &&
		len(u.itemMoves) == 0
}

// Equal reports whether two updates describe the same set of changes.
// Move lists must match element-for-element; the set fields compare
// regardless of recording order.
func (u *Update) Equal(other *Update) bool {
	if u == nil || other == nil {
		return u == other
	}
	return intSetsEqual(u.insertedSections, other.insertedSections) &&
		intSetsEqual(u.deletedSections, other.deletedSections) &&
		pathSetsEqual(u.insertedItems, other.insertedItems) &&
		pathSetsEqual(u.deletedItems, other.deletedItems) &&
		pathSetsEqual(u.updatedItems, other.updatedItems) &&
		slices.Equal(u.sectionMoves, other.sectionMoves) &&
		slices.Equal(u.itemMoves, other.itemMoves)
}

// InsertedSectionIndexes returns the inserted section indices in ascending
// order.
func (u *Update) InsertedSectionIndexes() []int {
	return sortedInts(u.insertedSections)
}

// DeletedSectionIndexes returns the deleted section indices in ascending
// order.
func (u *Update) DeletedSectionIndexes() []int {
	return sortedInts(u.deletedSections)
}

// InsertedItemPaths returns the inserted item paths in path order.
func (u *Update) InsertedItemPaths() []IndexPath {
	return sortedPaths(u.insertedItems)
}

// DeletedItemPaths returns the deleted item paths in path order.
func (u *Update) DeletedItemPaths() []IndexPath {
	return sortedPaths(u.deletedItems)
}

// UpdatedItemPaths returns the updated item paths in path order.
func (u *Update) UpdatedItemPaths() []IndexPath {
	return sortedPaths(u.updatedItems)
}

// SectionMoves returns the recorded section moves in recording order.
func (u *Update) SectionMoves() []SectionMove {
	return slices.Clone(u.sectionMoves)
}

// ItemMoves returns the recorded item moves in recording order.
func (u *Update) ItemMoves() []Move {
	return slices.Clone(u.itemMoves)
}

// HasInsertedSection reports whether the given section index was recorded
// as inserted.
func (u *Update) HasInsertedSection(index int) bool {
	_, ok := u.insertedSections[index]
	return ok
}

// HasDeletedSection reports whether the given section index was recorded
// as deleted.
func (u *Update) HasDeletedSection(index int) bool {
	_, ok := u.deletedSections[index]
	return ok
}

// HasInsertedItem reports whether the given path was recorded as inserted.
func (u *Update) HasInsertedItem(at IndexPath) bool {
	_, ok := u.insertedItems[at]
	return ok
}

// HasDeletedItem reports whether the given path was recorded as deleted.
func (u *Update) HasDeletedItem(at IndexPath) bool {
	_, ok := u.deletedItems[at]
	return ok
}

// HasUpdatedItem reports whether the given path was recorded as updated.
func (u *Update) HasUpdatedItem(at IndexPath) bool {
	_, ok := u.updatedItems[at]
	return ok
}

// TouchedSections returns every section index referenced by any recorded
// change, in ascending order. Observers redrawing per-section use this to
// limit their work.
func (u *Update) TouchedSections() []int {
	touched := make(map[int]struct{})
	for i := range u.insertedSections {
		touched[i] = struct{}{}
	}
	for i := range u.deletedSections {
		touched[i] = struct{}{}
	}
	for p := range u.insertedItems {
		touched[p.Section] = struct{}{}
	}
	for p := range u.deletedItems {
		touched[p.Section] = struct{}{}
	}
	for p := range u.updatedItems {
		touched[p.Section] = struct{}{}
	}
	for _, m := range u.sectionMoves {
		touched[m.From] = struct{}{}
		touched[m.To] = struct{}{}
	}
	for _, m := range u.itemMoves {
		touched[m.From.Section] = struct{}{}
		touched[m.To.Section] = struct{}{}
	}
	return sortedInts(touched)
}

// String returns a compact summary of the update, useful in diagnostics
// and test failures.
func (u *Update) String() string {
	var b strings.Builder
	b.WriteString("update{")
	for _, i := range u.InsertedSectionIndexes() {
		fmt.Fprintf(&b, " +sec:%d", i)
	}
	for _, i := range u.DeletedSectionIndexes() {
		fmt.Fprintf(&b, " -sec:%d", i)
	}
	for _, p := range u.InsertedItemPaths() {
		fmt.Fprintf(&b, " +item:%s", p)
	}
	for _, p := range u.DeletedItemPaths() {
		fmt.Fprintf(&b, " -item:%s", p)
	}
	for _, p := range u.UpdatedItemPaths() {
		fmt.Fprintf(&b, " ~item:%s", p)
	}
	for _, m := range u.sectionMoves {
		fmt.Fprintf(&b, " msec:%s", m)
	}
	for _, m := range u.itemMoves {
		fmt.Fprintf(&b, " mitem:%s", m)
	}
	b.WriteString(" }")
	return b.String()
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func sortedPaths(set map[IndexPath]struct{}) []IndexPath {
	out := make([]IndexPath, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func intSetsEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if _, ok := b[i]; !ok {
			return false
		}
	}
	return true
}

func pathSetsEqual(a, b map[IndexPath]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if _, ok := b[p]; !ok {
			return false
		}
	}
	return true
}
