package stock

import "context"

// Repository defines the interface for stock data access. Every query is a
// single read; there are no write operations on stock data.
type Repository interface {
	// ListSymbols returns the name/symbol/industry projection of all stocks
	ListSymbols(ctx context.Context) ([]SymbolRow, error)

	// ListByIndustry returns the symbols projection filtered by a
	// case-insensitive substring match on industry
	ListByIndustry(ctx context.Context, industry string) ([]SymbolRow, error)

	// GetBySymbol returns the first stock matching symbol exactly,
	// or ErrSymbolNotFound
	GetBySymbol(ctx context.Context, symbol string) (*Stock, error)

	// GetBySymbolInRange returns all stocks matching symbol exactly, bounded
	// by timestamp >= from and/or timestamp <= to. Empty from or to means
	// unbounded on that side.
	GetBySymbolInRange(ctx context.Context, symbol, from, to string) ([]Stock, error)
}
