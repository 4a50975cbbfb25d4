// Package yields holds the static country yield table shown on the landing
// page and the per-view country selection that reads from it.
package yields

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultCountry is selected when a view has not chosen one yet.
const DefaultCountry = "UAE"

//go:embed yields.yaml
var tableYAML []byte

// Rate is one high/average pair, in percent.
type Rate struct {
	High    float64 `yaml:"high" json:"high"`
	Average float64 `yaml:"average" json:"average"`
}

// Entry is the comparison shown for a single country.
type Entry struct {
	Country     string `yaml:"country" json:"country"`
	Region      string `yaml:"region" json:"region"`
	Traditional Rate   `yaml:"traditional" json:"traditional"`
	Agyal       Rate   `yaml:"agyal" json:"agyal"`
}

// Table is an immutable, ordered country -> Entry mapping. It is safe for
// concurrent readers.
type Table struct {
	order   []string
	entries map[string]Entry
}

var defaultTable = MustParse(tableYAML)

// Default returns the table compiled into the binary.
func Default() *Table {
	return defaultTable
}

// Parse decodes a YAML sequence of entries into a Table.
func Parse(data []byte) (*Table, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode yield table: %w", err)
	}
	return NewTable(entries)
}

// MustParse is Parse for data known to be valid at build time.
func MustParse(data []byte) *Table {
	t, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable validates entries and builds a Table keeping their order.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("yield table is empty")
	}

	t := &Table{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}
	for i, e := range entries {
		if e.Country == "" {
			return nil, fmt.Errorf("entry %d: country is required", i)
		}
		if _, dup := t.entries[e.Country]; dup {
			return nil, fmt.Errorf("entry %d: duplicate country %q", i, e.Country)
		}
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Country, err)
		}
		t.order = append(t.order, e.Country)
		t.entries[e.Country] = e
	}
	return t, nil
}

func (e Entry) validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"traditional.high", e.Traditional.High},
		{"traditional.average", e.Traditional.Average},
		{"agyal.high", e.Agyal.High},
		{"agyal.average", e.Agyal.Average},
	} {
		if v.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %v", v.name, v.value)
		}
	}
	return nil
}

// Countries returns every key in table order. The slice is a copy.
func (t *Table) Countries() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns every entry in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, c := range t.order {
		out = append(out, t.entries[c])
	}
	return out
}

// Len reports the number of countries.
func (t *Table) Len() int {
	return len(t.order)
}

// Has reports whether country is a key of the table.
func (t *Table) Has(country string) bool {
	_, ok := t.entries[country]
	return ok
}

// Comparison returns the stored entry for country.
func (t *Table) Comparison(country string) (Entry, error) {
	e, ok := t.entries[country]
	if !ok {
		return Entry{}, &NotFoundError{Country: country}
	}
	return e, nil
}

// Region groups consecutive countries sharing a region label.
type Region struct {
	Name      string
	Countries []string
}

// Regions returns the countries grouped by region, in table order.
func (t *Table) Regions() []Region {
	var out []Region
	for _, c := range t.order {
		name := t.entries[c].Region
		if n := len(out); n > 0 && out[n-1].Name == name {
			out[n-1].Countries = append(out[n-1].Countries, c)
			continue
		}
		out = append(out, Region{Name: name, Countries: []string{c}})
	}
	return out
}
