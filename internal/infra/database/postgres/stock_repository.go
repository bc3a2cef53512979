package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gurohotvedt/cab230serverside/internal/domain/stock"
)

// StockRepository implements stock.Repository using PostgreSQL
type StockRepository struct {
	pool *Pool
}

// NewStockRepository creates a new StockRepository
func NewStockRepository(pool *Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

// ListSymbols returns the name/symbol/industry projection of all stocks
func (r *StockRepository) ListSymbols(ctx context.Context) ([]stock.SymbolRow, error) {
	query := `SELECT name, symbol, industry FROM stocks`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	return scanSymbolRows(rows)
}

// ListByIndustry returns the symbols projection filtered by a
// case-insensitive substring match on industry
func (r *StockRepository) ListByIndustry(ctx context.Context, industry string) ([]stock.SymbolRow, error) {
	query := `SELECT name, symbol, industry FROM stocks WHERE industry ILIKE $1`
	pattern := "%" + industry + "%"

	rows, err := r.pool.Query(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols by industry: %w", err)
	}
	defer rows.Close()

	return scanSymbolRows(rows)
}

// GetBySymbol returns the first stock matching symbol exactly
func (r *StockRepository) GetBySymbol(ctx context.Context, symbol string) (*stock.Stock, error) {
	query := `
		SELECT name, symbol, industry, timestamp, open, high, low, close, volumes
		FROM stocks
		WHERE symbol = $1
		LIMIT 1
	`

	var s stock.Stock
	err := r.pool.QueryRow(ctx, query, symbol).Scan(
		&s.Name, &s.Symbol, &s.Industry, &s.Timestamp,
		&s.Open, &s.High, &s.Low, &s.Close, &s.Volumes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stock.ErrSymbolNotFound
		}
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}

	return &s, nil
}

// GetBySymbolInRange returns all stocks matching symbol exactly, bounded by
// timestamp >= from and/or timestamp <= to. Empty bounds are omitted from the
// predicate, so an inverted range simply yields zero rows.
func (r *StockRepository) GetBySymbolInRange(ctx context.Context, symbol, from, to string) ([]stock.Stock, error) {
	whereClauses := []string{"symbol = $1"}
	args := []interface{}{symbol}
	argIndex := 2

	if from != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("timestamp >= $%d", argIndex))
		args = append(args, from)
		argIndex++
	}
	if to != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("timestamp <= $%d", argIndex))
		args = append(args, to)
	}

	query := fmt.Sprintf(`
		SELECT name, symbol, industry, timestamp, open, high, low, close, volumes
		FROM stocks
		WHERE %s
	`, strings.Join(whereClauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocks in range: %w", err)
	}
	defer rows.Close()

	stocks := []stock.Stock{}
	for rows.Next() {
		var s stock.Stock
		err := rows.Scan(
			&s.Name, &s.Symbol, &s.Industry, &s.Timestamp,
			&s.Open, &s.High, &s.Low, &s.Close, &s.Volumes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stocks: %w", err)
	}

	return stocks, nil
}

func scanSymbolRows(rows pgx.Rows) ([]stock.SymbolRow, error) {
	symbols := []stock.SymbolRow{}
	for rows.Next() {
		var row stock.SymbolRow
		if err := rows.Scan(&row.Name, &row.Symbol, &row.Industry); err != nil {
			return nil, fmt.Errorf("failed to scan symbol row: %w", err)
		}
		symbols = append(symbols, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symbol rows: %w", err)
	}

	return symbols, nil
}
