package section

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Owner answers position queries for sections it contains. The storage
// engine satisfies this interface; a section holds it only as a weak
// back-reference for self-reporting its index, never for ownership.
type Owner interface {
	// SectionIndex returns the current index of the given section, or
	// false if the owner does not contain it.
	SectionIndex(s *Section) (int, bool)
}

// Section is an ordered container of heterogeneous items plus a keyed map
// of supplementary payloads. Item order is meaningful and preserved exactly
// as mutations dictate.
type Section struct {
	id              uuid.UUID
	items           []any
	supplementaries map[string]map[int]any
	owner           Owner
}

// New returns an empty section with a fresh identity token.
func New() *Section {
	return &Section{
		id:              uuid.New(),
		supplementaries: make(map[string]map[int]any),
	}
}

// NewWithItems returns a section pre-populated with a copy of items.
func NewWithItems(items []any) *Section {
	s := New()
	s.items = append(s.items, items...)
	return s
}

// ID returns the section's identity token. Two sections with identical
// contents are still distinguished by identity.
func (s *Section) ID() uuid.UUID {
	return s.id
}

// SetOwner installs or clears the weak back-reference to the containing
// store. The engine calls this when a section enters or leaves the store.
func (s *Section) SetOwner(owner Owner) {
	s.owner = owner
}

// Index returns the section's current index in its owning store, or false
// if the section is not attached to a store.
func (s *Section) Index() (int, bool) {
	if s.owner == nil {
		return 0, false
	}
	return s.owner.SectionIndex(s)
}

// NumberOfItems returns the item count.
func (s *Section) NumberOfItems() int {
	return len(s.items)
}

// Item returns the item at the given position, or ErrOutOfBounds if the
// position is outside [0, count).
func (s *Section) Item(at int) (any, error) {
	if at < 0 || at >= len(s.items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrOutOfBounds, at, len(s.items))
	}
	return s.items[at], nil
}

// Items returns a snapshot copy of the item sequence.
func (s *Section) Items() []any {
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

// Append adds an item at the end of the section.
func (s *Section) Append(item any) {
	s.items = append(s.items, item)
}

// Insert places an item at the given position, shifting later items up.
// The position must be within [0, count].
func (s *Section) Insert(item any, at int) {
	s.items = append(s.items, nil)
	copy(s.items[at+1:], s.items[at:])
	s.items[at] = item
}

// Remove deletes the item at the given position, shifting later items
// down. The position must be within [0, count).
func (s *Section) Remove(at int) {
	copy(s.items[at:], s.items[at+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
}

// Replace swaps the item at the given position for a new one. The position
// must be within [0, count).
func (s *Section) Replace(at int, item any) {
	s.items[at] = item
}

// Clear removes every item from the section.
func (s *Section) Clear() {
	s.items = nil
}

// SetSupplementary upserts the supplementary value for the given kind and
// slot. A nil value clears the slot; clearing the last slot of a kind
// removes the kind entirely.
func (s *Section) SetSupplementary(value any, kind string, at int) {
	if value == nil {
		slots, ok := s.supplementaries[kind]
		if !ok {
			return
		}
		delete(slots, at)
		if len(slots) == 0 {
			delete(s.supplementaries, kind)
		}
		return
	}
	slots, ok := s.supplementaries[kind]
	if !ok {
		slots = make(map[int]any)
		s.supplementaries[kind] = slots
	}
	slots[at] = value
}

// Supplementary returns the supplementary value for the given kind and
// slot, or false if the slot is unset.
func (s *Section) Supplementary(kind string, at int) (any, bool) {
	slots, ok := s.supplementaries[kind]
	if !ok {
		return nil, false
	}
	v, ok := slots[at]
	return v, ok
}

// SupplementaryKinds returns the kinds with at least one populated slot,
// in sorted order.
func (s *Section) SupplementaryKinds() []string {
	kinds := make([]string, 0, len(s.supplementaries))
	for k := range s.supplementaries {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// RemoveSupplementaryKind clears every slot of the given kind.
func (s *Section) RemoveSupplementaryKind(kind string) {
	delete(s.supplementaries, kind)
}
