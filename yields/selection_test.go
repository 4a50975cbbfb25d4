package yields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection(t *testing.T) {
	t.Run("starts on the default country", func(t *testing.T) {
		s := NewSelection(Default())
		assert.Equal(t, DefaultCountry, s.Country())

		e, err := s.Comparison()
		require.NoError(t, err)
		assert.Equal(t, 2.2, e.Traditional.High)
		assert.Equal(t, 4.5, e.Agyal.High)
	})

	t.Run("falls back to the first key", func(t *testing.T) {
		tbl, err := NewTable([]Entry{{Country: "Japan"}, {Country: "UK"}})
		require.NoError(t, err)
		assert.Equal(t, "Japan", NewSelection(tbl).Country())
	})

	t.Run("select reads back every country", func(t *testing.T) {
		s := NewSelection(Default())
		for _, c := range Default().Countries() {
			require.NoError(t, s.Select(c))
			assert.Equal(t, c, s.Country())
			require.NoError(t, s.Select(c))
			assert.Equal(t, c, s.Country())
		}
	})

	t.Run("japan", func(t *testing.T) {
		s := NewSelection(Default())
		require.NoError(t, s.Select("Japan"))
		e, err := s.Comparison()
		require.NoError(t, err)
		assert.Equal(t, "1.2%", FormatPercent(e.Traditional.High))
		assert.Equal(t, "3.5%", FormatPercent(e.Agyal.High))
	})

	t.Run("unknown country keeps the previous selection", func(t *testing.T) {
		s := NewSelection(Default())
		require.NoError(t, s.Select("Oman"))
		err := s.Select("Nonexistent")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "Oman", s.Country())
	})
}

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		2.2:   "2.2%",
		4.0:   "4%",
		0.5:   "0.5%",
		0:     "0%",
		1.0:   "1%",
		0.005: "0.005%",
		2.125: "2.125%",
		1e-09: "0.000000001%",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatPercent(in), "FormatPercent(%v)", in)
	}
}
