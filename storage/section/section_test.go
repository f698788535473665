package section

import (
	"errors"
	"testing"
)

func TestSectionItemAccess(t *testing.T) {
	s := NewWithItems([]any{"a", "b", "c"})

	t.Run("count", func(t *testing.T) {
		if got := s.NumberOfItems(); got != 3 {
			t.Errorf("NumberOfItems() = %d, want 3", got)
		}
	})

	t.Run("item in range", func(t *testing.T) {
		it, err := s.Item(1)
		if err != nil {
			t.Fatalf("Item(1) error: %v", err)
		}
		if it != "b" {
			t.Errorf("Item(1) = %v, want b", it)
		}
	})

	t.Run("item past end", func(t *testing.T) {
		if _, err := s.Item(3); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Item(3) error = %v, want ErrOutOfBounds", err)
		}
	})

	t.Run("negative item", func(t *testing.T) {
		if _, err := s.Item(-1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Item(-1) error = %v, want ErrOutOfBounds", err)
		}
	})
}

func TestSectionMutation(t *testing.T) {
	t.Run("append preserves order", func(t *testing.T) {
		s := New()
		s.Append("a")
		s.Append("b")
		assertItems(t, s, "a", "b")
	})

	t.Run("insert shifts later items", func(t *testing.T) {
		s := NewWithItems([]any{"a", "b"})
		s.Insert("x", 1)
		assertItems(t, s, "a", "x", "b")
	})

	t.Run("insert at count appends", func(t *testing.T) {
		s := NewWithItems([]any{"a"})
		s.Insert("b", 1)
		assertItems(t, s, "a", "b")
	})

	t.Run("remove shifts later items down", func(t *testing.T) {
		s := NewWithItems([]any{"a", "b", "c"})
		s.Remove(1)
		assertItems(t, s, "a", "c")
	})

	t.Run("replace keeps position", func(t *testing.T) {
		s := NewWithItems([]any{"a", "b"})
		s.Replace(0, "z")
		assertItems(t, s, "z", "b")
	})

	t.Run("clear empties", func(t *testing.T) {
		s := NewWithItems([]any{"a", "b"})
		s.Clear()
		if got := s.NumberOfItems(); got != 0 {
			t.Errorf("NumberOfItems() after Clear = %d, want 0", got)
		}
	})
}

func TestSectionItemsSnapshot(t *testing.T) {
	s := NewWithItems([]any{"a", "b"})
	snap := s.Items()
	snap[0] = "mutated"

	it, err := s.Item(0)
	if err != nil {
		t.Fatalf("Item(0) error: %v", err)
	}
	if it != "a" {
		t.Errorf("mutating the snapshot leaked into the section: got %v", it)
	}
}

func TestSectionSupplementaries(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		s := New()
		s.SetSupplementary("Header Title", "header", 0)

		v, ok := s.Supplementary("header", 0)
		if !ok || v != "Header Title" {
			t.Errorf("Supplementary(header, 0) = %v, %v; want Header Title, true", v, ok)
		}
	})

	t.Run("unset slot is absent", func(t *testing.T) {
		s := New()
		if _, ok := s.Supplementary("header", 0); ok {
			t.Error("unset supplementary should be absent")
		}
	})

	t.Run("kinds are independent", func(t *testing.T) {
		s := New()
		s.SetSupplementary("H", "header", 0)
		s.SetSupplementary("F", "footer", 0)

		if v, _ := s.Supplementary("header", 0); v != "H" {
			t.Errorf("header = %v, want H", v)
		}
		if v, _ := s.Supplementary("footer", 0); v != "F" {
			t.Errorf("footer = %v, want F", v)
		}
	})

	t.Run("multiple slots per kind", func(t *testing.T) {
		s := New()
		s.SetSupplementary("first", "badge", 0)
		s.SetSupplementary("second", "badge", 1)

		if v, _ := s.Supplementary("badge", 1); v != "second" {
			t.Errorf("badge slot 1 = %v, want second", v)
		}
	})

	t.Run("nil clears the slot", func(t *testing.T) {
		s := New()
		s.SetSupplementary("H", "header", 0)
		s.SetSupplementary(nil, "header", 0)

		if _, ok := s.Supplementary("header", 0); ok {
			t.Error("cleared supplementary should be absent")
		}
		if kinds := s.SupplementaryKinds(); len(kinds) != 0 {
			t.Errorf("kinds after clearing = %v, want none", kinds)
		}
	})

	t.Run("clearing an unset slot is a no-op", func(t *testing.T) {
		s := New()
		s.SetSupplementary(nil, "header", 0)
		if kinds := s.SupplementaryKinds(); len(kinds) != 0 {
			t.Errorf("kinds = %v, want none", kinds)
		}
	})

	t.Run("remove kind clears all slots", func(t *testing.T) {
		s := New()
		s.SetSupplementary("a", "badge", 0)
		s.SetSupplementary("b", "badge", 1)
		s.RemoveSupplementaryKind("badge")

		if _, ok := s.Supplementary("badge", 0); ok {
			t.Error("slot 0 should be cleared")
		}
		if _, ok := s.Supplementary("badge", 1); ok {
			t.Error("slot 1 should be cleared")
		}
	})

	t.Run("sorted kind listing", func(t *testing.T) {
		s := New()
		s.SetSupplementary("f", "footer", 0)
		s.SetSupplementary("h", "header", 0)
		s.SetSupplementary("b", "badge", 0)

		kinds := s.SupplementaryKinds()
		want := []string{"badge", "footer", "header"}
		if len(kinds) != len(want) {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
		for i := range want {
			if kinds[i] != want[i] {
				t.Errorf("kinds[%d] = %q, want %q", i, kinds[i], want[i])
			}
		}
	})
}

type fixedOwner struct {
	index int
	known *Section
}

func (o *fixedOwner) SectionIndex(s *Section) (int, bool) {
	if s == o.known {
		return o.index, true
	}
	return 0, false
}

func TestSectionOwnerBackReference(t *testing.T) {
	t.Run("detached section has no index", func(t *testing.T) {
		s := New()
		if _, ok := s.Index(); ok {
			t.Error("detached section should report no index")
		}
	})

	t.Run("attached section reports its index", func(t *testing.T) {
		s := New()
		s.SetOwner(&fixedOwner{index: 4, known: s})

		idx, ok := s.Index()
		if !ok || idx != 4 {
			t.Errorf("Index() = %d, %v; want 4, true", idx, ok)
		}
	})

	t.Run("clearing the owner detaches", func(t *testing.T) {
		s := New()
		s.SetOwner(&fixedOwner{index: 1, known: s})
		s.SetOwner(nil)
		if _, ok := s.Index(); ok {
			t.Error("detached section should report no index")
		}
	})
}

func TestSectionIdentity(t *testing.T) {
	a := NewWithItems([]any{"same"})
	b := NewWithItems([]any{"same"})
	if a.ID() == b.ID() {
		t.Error("sections with identical contents must still have distinct identity tokens")
	}
}

func assertItems(t *testing.T, s *Section, want ...any) {
	t.Helper()
	got := s.Items()
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
