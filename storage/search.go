package storage

// IndexPath scans sections in order, then items within each section in
// order, returning the first path whose stored item equals the query under
// the engine's equality function. O(total items) worst case.
func (e *Engine) IndexPath(item any) (IndexPath, bool) {
	for si, s := range e.sections {
		for ii, stored := range s.Items() {
			if e.equal(stored, item) {
				return Path(si, ii), true
			}
		}
	}
	return IndexPath{}, false
}

// Item returns the item at the given path, or false if the path does not
// resolve.
func (e *Engine) Item(at IndexPath) (any, bool) {
	s, ok := e.SectionAt(at.Section)
	if !ok {
		return nil, false
	}
	item, err := s.Item(at.Item)
	if err != nil {
		return nil, false
	}
	return item, true
}

// Items returns a snapshot of the items in the section at the given index,
// or false if the index is out of range.
func (e *Engine) Items(sectionIndex int) ([]any, bool) {
	s, ok := e.SectionAt(sectionIndex)
	if !ok {
		return nil, false
	}
	return s.Items(), true
}
