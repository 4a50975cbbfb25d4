package yields

import "strconv"

// Selection is the country choice of a single view. It is not safe for
// concurrent use; each view owns its own.
type Selection struct {
	table   *Table
	country string
}

// NewSelection starts on DefaultCountry, or on the first key when the table
// does not contain it.
func NewSelection(t *Table) *Selection {
	s := &Selection{table: t, country: DefaultCountry}
	if !t.Has(DefaultCountry) {
		s.country = t.order[0]
	}
	return s
}

// Select changes the selected country. An unknown country leaves the
// selection unchanged.
func (s *Selection) Select(country string) error {
	if !s.table.Has(country) {
		return &NotFoundError{Country: country}
	}
	s.country = country
	return nil
}

// Country returns the selected country.
func (s *Selection) Country() string {
	return s.country
}

// Comparison returns the entry for the selected country.
func (s *Selection) Comparison() (Entry, error) {
	return s.table.Comparison(s.country)
}

// FormatPercent renders v exactly, in its shortest decimal form, followed
// by "%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
