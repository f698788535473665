package update

import "fmt"

// IndexPath identifies one item's position as a (section, item) pair.
// Both indices are zero-based.
type IndexPath struct {
	// Section is the index of the containing section.
	Section int

	// Item is the index of the item within its section.
	Item int
}

// Path is a convenience constructor for an IndexPath.
func Path(section, item int) IndexPath {
	return IndexPath{Section: section, Item: item}
}

// Less reports whether p orders before other, comparing the section index
// first and the item index second.
func (p IndexPath) Less(other IndexPath) bool {
	if p.Section != other.Section {
		return p.Section < other.Section
	}
	return p.Item < other.Item
}

// String returns a human-readable representation of the path.
func (p IndexPath) String() string {
	return fmt.Sprintf("(%d,%d)", p.Section, p.Item)
}

// Move records an item moving from one index path to another.
type Move struct {
	// From is the item's position before the move.
	From IndexPath

	// To is the item's position after the move.
	To IndexPath
}

// String returns a human-readable representation of the move.
func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}

// SectionMove records a whole section moving from one index to another.
type SectionMove struct {
	// From is the section's index before the move.
	From int

	// To is the section's index after the move.
	To int
}

// String returns a human-readable representation of the section move.
func (m SectionMove) String() string {
	return fmt.Sprintf("%d->%d", m.From, m.To)
}
