package storage

import "testing"

func TestSetSupplementaries(t *testing.T) {
	t.Run("assigns one model per section index", func(t *testing.T) {
		e, obs := newTestEngine()

		e.SetSupplementaries("header", []any{"H0", "H1", "H2"})

		if got := e.SectionCount(); got != 3 {
			t.Fatalf("SectionCount() = %d, want 3", got)
		}
		for i, want := range []any{"H0", "H1", "H2"} {
			v, ok := e.SupplementaryModel("header", i)
			if !ok || v != want {
				t.Errorf("SupplementaryModel(header, %d) = %v, %v; want %v", i, v, ok, want)
			}
		}
		if obs.reloads != 1 {
			t.Errorf("reloads = %d, want 1", obs.reloads)
		}
		if len(obs.updates) != 0 {
			t.Error("supplementary assignment must not produce a diff")
		}
	})

	t.Run("empty input clears the kind everywhere", func(t *testing.T) {
		e, obs := newTestEngine()
		e.SetSupplementaries("header", []any{"H0", "H1"})

		e.SetSupplementaries("header", nil)

		for i := 0; i < 2; i++ {
			if _, ok := e.SupplementaryModel("header", i); ok {
				t.Errorf("section %d header should be cleared", i)
			}
		}
		if obs.reloads != 2 {
			t.Errorf("reloads = %d, want 2", obs.reloads)
		}
	})

	t.Run("kinds are independent", func(t *testing.T) {
		e, _ := newTestEngine()
		e.SetSupplementaries("header", []any{"H"})
		e.SetSupplementaries("footer", []any{"F"})
		e.SetSupplementaries("header", nil)

		if _, ok := e.SupplementaryModel("header", 0); ok {
			t.Error("header should be cleared")
		}
		if v, ok := e.SupplementaryModel("footer", 0); !ok || v != "F" {
			t.Errorf("footer = %v, %v; want F, true", v, ok)
		}
	})
}

func TestHeaderFooterConvenience(t *testing.T) {
	t.Run("bulk setters use the registered kinds", func(t *testing.T) {
		e := New(WithHeaderKind("header"), WithFooterKind("footer"))
		obs := &recordingObserver{}
		e.SetObserver(obs)

		e.SetSectionHeaderModels([]any{"Fruit", "Vegetables"})
		e.SetSectionFooterModels([]any{"2 kinds", "1 kind"})

		if v, _ := e.HeaderModel(1); v != "Vegetables" {
			t.Errorf("HeaderModel(1) = %v, want Vegetables", v)
		}
		if v, _ := e.FooterModel(0); v != "2 kinds" {
			t.Errorf("FooterModel(0) = %v, want 2 kinds", v)
		}
		if obs.reloads != 2 {
			t.Errorf("reloads = %d, want 2", obs.reloads)
		}
	})

	t.Run("singular setters target one section", func(t *testing.T) {
		e := New(WithHeaderKind("header"), WithFooterKind("footer"))

		e.SetSectionHeaderModel("Solo", 2)

		if got := e.SectionCount(); got != 3 {
			t.Errorf("SectionCount() = %d, want 3", got)
		}
		if v, ok := e.HeaderModel(2); !ok || v != "Solo" {
			t.Errorf("HeaderModel(2) = %v, %v; want Solo, true", v, ok)
		}
		if _, ok := e.HeaderModel(0); ok {
			t.Error("HeaderModel(0) should be unset")
		}
	})

	t.Run("registration after creation", func(t *testing.T) {
		e := New()
		e.SetSupplementaryHeaderKind("header")
		e.SetSectionHeaderModels([]any{"H"})
		if v, _ := e.HeaderModel(0); v != "H" {
			t.Errorf("HeaderModel(0) = %v, want H", v)
		}
	})

	t.Run("out of range getter is absent", func(t *testing.T) {
		e := New(WithHeaderKind("header"))
		if _, ok := e.HeaderModel(4); ok {
			t.Error("HeaderModel beyond bounds should be absent")
		}
	})
}

func TestUnregisteredKindPanics(t *testing.T) {
	mustPanic := func(t *testing.T, name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s without a registered kind should panic", name)
			}
		}()
		fn()
	}

	e := New()
	mustPanic(t, "SetSectionHeaderModels", func() { e.SetSectionHeaderModels([]any{"H"}) })
	mustPanic(t, "SetSectionFooterModels", func() { e.SetSectionFooterModels([]any{"F"}) })
	mustPanic(t, "SetSectionHeaderModel", func() { e.SetSectionHeaderModel("H", 0) })
	mustPanic(t, "SetSectionFooterModel", func() { e.SetSectionFooterModel("F", 0) })
	mustPanic(t, "HeaderModel", func() { e.HeaderModel(0) })
	mustPanic(t, "FooterModel", func() { e.FooterModel(0) })
}
