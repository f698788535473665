package storage

// SetSupplementaries bulk-assigns one supplementary value per section
// index for the given kind: models[i] goes to section i's slot 0, creating
// sections as needed. An empty slice clears every supplementary of that
// kind instead. Either way the observer is told to reload everything; no
// diff is recorded.
func (e *Engine) SetSupplementaries(kind string, models []any) {
	if len(models) == 0 {
		for _, s := range e.sections {
			s.RemoveSupplementaryKind(kind)
		}
		e.reloadAll()
		return
	}
	e.growSections(len(models)-1, false)
	for i, m := range models {
		e.sections[i].SetSupplementary(m, kind, 0)
	}
	e.reloadAll()
}

// SetSupplementary assigns one supplementary value for the given kind to
// the section at the given index, creating it if needed, and signals a
// full reload.
func (e *Engine) SetSupplementary(model any, kind string, sectionIndex int) {
	s := e.growSections(sectionIndex, false)
	s.SetSupplementary(model, kind, 0)
	e.reloadAll()
}

// SupplementaryModel returns the slot-0 supplementary of the given kind
// for the section at the given index, or false if unset or out of range.
func (e *Engine) SupplementaryModel(kind string, sectionIndex int) (any, bool) {
	s, ok := e.SectionAt(sectionIndex)
	if !ok {
		return nil, false
	}
	return s.Supplementary(kind, 0)
}

// SetSupplementaryHeaderKind registers the kind used by the header
// convenience setters.
func (e *Engine) SetSupplementaryHeaderKind(kind string) {
	e.headerKind = kind
}

// SetSupplementaryFooterKind registers the kind used by the footer
// convenience setters.
func (e *Engine) SetSupplementaryFooterKind(kind string) {
	e.footerKind = kind
}

// SetSectionHeaderModels bulk-assigns header models, one per section
// index. The header kind must be registered first; using the convenience
// setters without registration is a programmer error and panics.
func (e *Engine) SetSectionHeaderModels(models []any) {
	e.mustHeaderKind()
	e.SetSupplementaries(e.headerKind, models)
}

// SetSectionFooterModels bulk-assigns footer models, one per section
// index. The footer kind must be registered first.
func (e *Engine) SetSectionFooterModels(models []any) {
	e.mustFooterKind()
	e.SetSupplementaries(e.footerKind, models)
}

// SetSectionHeaderModel assigns the header model for one section, creating
// it if needed. The header kind must be registered first.
func (e *Engine) SetSectionHeaderModel(model any, sectionIndex int) {
	e.mustHeaderKind()
	e.SetSupplementary(model, e.headerKind, sectionIndex)
}

// SetSectionFooterModel assigns the footer model for one section, creating
// it if needed. The footer kind must be registered first.
func (e *Engine) SetSectionFooterModel(model any, sectionIndex int) {
	e.mustFooterKind()
	e.SetSupplementary(model, e.footerKind, sectionIndex)
}

// HeaderModel returns the header model for the section at the given index,
// or false if unset. The header kind must be registered first.
func (e *Engine) HeaderModel(sectionIndex int) (any, bool) {
	e.mustHeaderKind()
	return e.SupplementaryModel(e.headerKind, sectionIndex)
}

// FooterModel returns the footer model for the section at the given index,
// or false if unset. The footer kind must be registered first.
func (e *Engine) FooterModel(sectionIndex int) (any, bool) {
	e.mustFooterKind()
	return e.SupplementaryModel(e.footerKind, sectionIndex)
}

func (e *Engine) mustHeaderKind() {
	if e.headerKind == "" {
		panic("storage: header supplementary kind not registered")
	}
}

func (e *Engine) mustFooterKind() {
	if e.footerKind == "" {
		panic("storage: footer supplementary kind not registered")
	}
}
