package yields

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	t.Run("every listed country resolves to non-negative figures", func(t *testing.T) {
		for _, c := range tbl.Countries() {
			e, err := tbl.Comparison(c)
			require.NoError(t, err, c)
			assert.Equal(t, c, e.Country)
			assert.GreaterOrEqual(t, e.Traditional.High, 0.0, c)
			assert.GreaterOrEqual(t, e.Traditional.Average, 0.0, c)
			assert.GreaterOrEqual(t, e.Agyal.High, 0.0, c)
			assert.GreaterOrEqual(t, e.Agyal.Average, 0.0, c)
		}
	})

	t.Run("keeps the defined order", func(t *testing.T) {
		want := []string{
			"UAE", "Saudi Arabia", "Qatar", "Kuwait", "Bahrain", "Oman",
			"Germany", "France", "Italy", "Spain", "Netherlands",
			"UK", "USA",
			"Japan", "Singapore", "Australia", "Canada", "Switzerland",
		}
		if diff := cmp.Diff(want, tbl.Countries()); diff != "" {
			t.Errorf("Countries() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, len(want), tbl.Len())
	})

	t.Run("repeated calls are stable and independent", func(t *testing.T) {
		first := tbl.Countries()
		first[0] = "Atlantis"
		assert.Equal(t, "UAE", tbl.Countries()[0])
		assert.Equal(t, tbl.Countries(), tbl.Countries())
	})

	t.Run("UAE figures", func(t *testing.T) {
		e, err := tbl.Comparison("UAE")
		require.NoError(t, err)
		want := Entry{
			Country:     "UAE",
			Region:      "GCC",
			Traditional: Rate{High: 2.2, Average: 1.5},
			Agyal:       Rate{High: 4.5, Average: 3.8},
		}
		if diff := cmp.Diff(want, e); diff != "" {
			t.Errorf("Comparison(UAE) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown country", func(t *testing.T) {
		_, err := tbl.Comparison("Nonexistent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)

		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Nonexistent", nf.Country)
	})

	t.Run("regions group consecutive countries", func(t *testing.T) {
		regions := tbl.Regions()
		require.Len(t, regions, 4)
		assert.Equal(t, "GCC", regions[0].Name)
		assert.Len(t, regions[0].Countries, 6)
		assert.Equal(t, []string{"UK", "USA"}, regions[2].Countries)
	})
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr string
	}{
		{"empty", nil, "empty"},
		{"missing country", []Entry{{}}, "country is required"},
		{"duplicate", []Entry{{Country: "UK"}, {Country: "UK"}}, "duplicate"},
		{"negative", []Entry{{Country: "UK", Agyal: Rate{High: -1}}}, "agyal.high"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(`
- country: B
  traditional: {high: 1, average: 0.5}
  agyal: {high: 2, average: 1.5}
- country: A
  traditional: {high: 1, average: 0.5}
  agyal: {high: 2, average: 1.5}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, tbl.Countries())

	_, err = Parse([]byte("country: [unterminated"))
	assert.Error(t, err)
}
