package storage

import (
	"sort"

	"github.com/dshills/gridstorm/storage/section"
)

// DeleteSections removes the sections at the given indices. Removal runs
// highest-index-first so remaining indices stay valid during the loop;
// each deletion is recorded at its original index. Indices beyond the
// current bounds are skipped silently.
func (e *Engine) DeleteSections(indexes ...int) {
	e.StartUpdate()
	defer e.FinishUpdate()

	unique := make([]int, 0, len(indexes))
	seen := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		unique = append(unique, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(unique)))

	for _, i := range unique {
		if i < 0 || i >= len(e.sections) {
			continue
		}
		e.sections[i].SetOwner(nil)
		e.sections = append(e.sections[:i], e.sections[i+1:]...)
		e.pending.DeleteSection(i)
	}
}

// MoveSection moves the section at from to the to index, auto-extending
// the section list so that both indices resolve.
func (e *Engine) MoveSection(from, to int) {
	e.StartUpdate()
	defer e.FinishUpdate()

	if from < 0 || to < 0 {
		e.diag("move section: negative index %d -> %d", from, to)
		return
	}
	top := from
	if to > top {
		top = to
	}
	e.growSections(top, true)

	s := e.sections[from]
	e.sections = append(e.sections[:from], e.sections[from+1:]...)
	e.sections = append(e.sections[:to], append([]*section.Section{s}, e.sections[to:]...)...)
	e.pending.MoveSection(from, to)
}

// SetSection replaces the entire section object at the given index,
// auto-extending the list if needed. This is total replacement: no diff is
// recorded and the observer is told to reload everything.
func (e *Engine) SetSection(s *section.Section, at int) {
	e.growSections(at, false)
	e.sections[at].SetOwner(nil)
	s.SetOwner(e)
	e.sections[at] = s
	e.reloadAll()
}
