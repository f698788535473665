package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/gridstorm/storage"
)

// Supplementary kinds used by the viewer.
const (
	HeaderKind = "header"
	FooterKind = "footer"
)

// Dataset is the TOML shape of a viewer dataset file.
type Dataset struct {
	// Title is shown in the view's top bar.
	Title string `toml:"title"`

	// Sections lists the store's sections in display order.
	Sections []SectionConfig `toml:"section"`
}

// SectionConfig is one [[section]] table in a dataset file.
type SectionConfig struct {
	Header string   `toml:"header"`
	Footer string   `toml:"footer"`
	Items  []string `toml:"items"`
}

// LoadDataset reads and parses a dataset file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	return ParseDataset(data)
}

// ParseDataset parses TOML dataset bytes.
func ParseDataset(data []byte) (*Dataset, error) {
	var d Dataset
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return &d, nil
}

// Apply replaces the engine's contents with the dataset. It uses the
// bulk-replacement path throughout, so observers see reload signals rather
// than diffs.
func (d *Dataset) Apply(e *storage.Engine) {
	e.Reset()
	headers := make([]any, 0, len(d.Sections))
	footers := make([]any, 0, len(d.Sections))
	for i, sc := range d.Sections {
		items := make([]any, len(sc.Items))
		for j, it := range sc.Items {
			items[j] = it
		}
		e.SetItems(items, i)
		headers = append(headers, sc.Header)
		footers = append(footers, sc.Footer)
	}
	if len(d.Sections) > 0 {
		e.SetSectionHeaderModels(headers)
		e.SetSectionFooterModels(footers)
	}
}
