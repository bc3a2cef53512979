package stock

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Stock represents one daily observation of a listed stock.
// Maps to the stocks table. Read-only from the API's perspective.
type Stock struct {
	Name      string          `json:"name" db:"name"`
	Symbol    string          `json:"symbol" db:"symbol"`       // 1-5 capital letters
	Industry  string          `json:"industry" db:"industry"`
	Timestamp time.Time       `json:"timestamp" db:"timestamp"`
	Open      decimal.Decimal `json:"open" db:"open"`
	High      decimal.Decimal `json:"high" db:"high"`
	Low       decimal.Decimal `json:"low" db:"low"`
	Close     decimal.Decimal `json:"close" db:"close"`
	Volumes   int64           `json:"volumes" db:"volumes"`
}

// SymbolRow is the reduced projection returned by the symbols listing.
type SymbolRow struct {
	Name     string `json:"name" db:"name"`
	Symbol   string `json:"symbol" db:"symbol"`
	Industry string `json:"industry" db:"industry"`
}

// ValidateSymbol validates stock symbol format (1-5 capital letters)
func ValidateSymbol(symbol string) bool {
	if len(symbol) < 1 || len(symbol) > 5 {
		return false
	}
	return symbol == strings.ToUpper(symbol)
}
