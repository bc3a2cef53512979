package stock

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   bool
	}{
		{"single letter", "A", true},
		{"five letters", "GOOGL", true},
		{"typical symbol", "AAL", true},
		{"empty", "", false},
		{"six letters", "ABCDEF", false},
		{"lowercase", "aal", false},
		{"mixed case", "AaL", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSymbol(tt.symbol))
		})
	}
}

func TestParseSymbolsQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     Filter
		wantErr  error
	}{
		{"empty query", "", Filter{Kind: FilterNone}, nil},
		{"industry only", "industry=Tech", Filter{Kind: FilterIndustry, Industry: "Tech"}, nil},
		{"industry plus extra key", "industry=Tech&other=1", Filter{}, ErrInvalidIndustryQuery},
		{"unknown key", "sector=Tech", Filter{}, ErrInvalidIndustryQuery},
		{"empty industry value", "industry=", Filter{}, ErrInvalidIndustryQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.rawQuery)
			assert.NoError(t, err)

			got, err := ParseSymbolsQuery(query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSymbolQuery(t *testing.T) {
	t.Run("empty query accepted", func(t *testing.T) {
		got, err := ParseSymbolQuery(url.Values{})
		assert.NoError(t, err)
		assert.Equal(t, FilterNone, got.Kind)
	})

	t.Run("any key rejected", func(t *testing.T) {
		query, _ := url.ParseQuery("from=2020-01-01")
		_, err := ParseSymbolQuery(query)
		assert.ErrorIs(t, err, ErrNoParamsAllowed)
	})
}

func TestParseAuthedQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     Filter
		wantErr  error
	}{
		{"empty query", "", Filter{Kind: FilterNone}, nil},
		{"from only", "from=2020-03-15", Filter{Kind: FilterDateFrom, From: "2020-03-15"}, nil},
		{"to only", "to=2020-03-20", Filter{Kind: FilterDateTo, To: "2020-03-20"}, nil},
		{"from and to", "from=2020-03-15&to=2020-03-20",
			Filter{Kind: FilterDateRange, From: "2020-03-15", To: "2020-03-20"}, nil},
		{"inverted range still valid", "from=2020-01-01&to=2019-01-01",
			Filter{Kind: FilterDateRange, From: "2020-01-01", To: "2019-01-01"}, nil},
		{"unknown key", "date=2020-03-15", Filter{}, ErrInvalidDateQuery},
		{"from plus unknown key", "from=2020-03-15&limit=5", Filter{}, ErrInvalidDateQuery},
		{"from and to plus extra", "from=2020-03-15&to=2020-03-20&x=1", Filter{}, ErrInvalidDateQuery},
		{"empty from value", "from=", Filter{}, ErrInvalidDateQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.rawQuery)
			assert.NoError(t, err)

			got, err := ParseAuthedQuery(query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
