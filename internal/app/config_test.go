package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/gridstorm/storage"
)

const sampleDataset = `
title = "Pantry"

[[section]]
header = "Fruit"
footer = "2 kinds"
items = ["apple", "banana"]

[[section]]
header = "Vegetables"
items = ["carrot"]
`

func TestParseDataset(t *testing.T) {
	d, err := ParseDataset([]byte(sampleDataset))
	if err != nil {
		t.Fatalf("ParseDataset error: %v", err)
	}

	if d.Title != "Pantry" {
		t.Errorf("Title = %q, want Pantry", d.Title)
	}
	if len(d.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(d.Sections))
	}
	if d.Sections[0].Header != "Fruit" || d.Sections[0].Footer != "2 kinds" {
		t.Errorf("section 0 header/footer = %q/%q", d.Sections[0].Header, d.Sections[0].Footer)
	}
	if len(d.Sections[0].Items) != 2 || d.Sections[0].Items[1] != "banana" {
		t.Errorf("section 0 items = %v", d.Sections[0].Items)
	}
	if d.Sections[1].Footer != "" {
		t.Errorf("section 1 footer = %q, want empty", d.Sections[1].Footer)
	}
}

func TestParseDatasetRejectsBadTOML(t *testing.T) {
	if _, err := ParseDataset([]byte("title = [unclosed")); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestLoadDataset(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.toml")
		if err := os.WriteFile(path, []byte(sampleDataset), 0o644); err != nil {
			t.Fatal(err)
		}

		d, err := LoadDataset(path)
		if err != nil {
			t.Fatalf("LoadDataset error: %v", err)
		}
		if d.Title != "Pantry" {
			t.Errorf("Title = %q, want Pantry", d.Title)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		if _, err := LoadDataset(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("missing dataset should fail")
		}
	})
}

func TestDatasetApply(t *testing.T) {
	d, err := ParseDataset([]byte(sampleDataset))
	if err != nil {
		t.Fatal(err)
	}

	e := storage.New(
		storage.WithHeaderKind(HeaderKind),
		storage.WithFooterKind(FooterKind),
	)
	d.Apply(e)

	if got := e.SectionCount(); got != 2 {
		t.Fatalf("SectionCount() = %d, want 2", got)
	}
	items, _ := e.Items(0)
	if len(items) != 2 || items[0] != "apple" {
		t.Errorf("section 0 items = %v, want [apple banana]", items)
	}
	if h, _ := e.HeaderModel(1); h != "Vegetables" {
		t.Errorf("HeaderModel(1) = %v, want Vegetables", h)
	}
	if f, _ := e.FooterModel(0); f != "2 kinds" {
		t.Errorf("FooterModel(0) = %v, want 2 kinds", f)
	}

	t.Run("apply replaces prior contents", func(t *testing.T) {
		smaller, err := ParseDataset([]byte("title = \"Tiny\"\n[[section]]\nitems = [\"only\"]\n"))
		if err != nil {
			t.Fatal(err)
		}
		smaller.Apply(e)

		if got := e.SectionCount(); got != 1 {
			t.Errorf("SectionCount() = %d, want 1", got)
		}
		items, _ := e.Items(0)
		if len(items) != 1 || items[0] != "only" {
			t.Errorf("items = %v, want [only]", items)
		}
	})
}
