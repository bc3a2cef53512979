package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurohotvedt/cab230serverside/internal/api/handlers"
	"github.com/gurohotvedt/cab230serverside/internal/domain/stock"
)

// stubStockRepo implements stock.Repository over an in-memory row set
type stubStockRepo struct {
	rows []stock.Stock
}

func (s *stubStockRepo) ListSymbols(ctx context.Context) ([]stock.SymbolRow, error) {
	symbols := []stock.SymbolRow{}
	for _, r := range s.rows {
		symbols = append(symbols, stock.SymbolRow{Name: r.Name, Symbol: r.Symbol, Industry: r.Industry})
	}
	return symbols, nil
}

func (s *stubStockRepo) ListByIndustry(ctx context.Context, industry string) ([]stock.SymbolRow, error) {
	symbols := []stock.SymbolRow{}
	for _, r := range s.rows {
		if strings.Contains(strings.ToLower(r.Industry), strings.ToLower(industry)) {
			symbols = append(symbols, stock.SymbolRow{Name: r.Name, Symbol: r.Symbol, Industry: r.Industry})
		}
	}
	return symbols, nil
}

func (s *stubStockRepo) GetBySymbol(ctx context.Context, symbol string) (*stock.Stock, error) {
	for _, r := range s.rows {
		if r.Symbol == symbol {
			row := r
			return &row, nil
		}
	}
	return nil, stock.ErrSymbolNotFound
}

func (s *stubStockRepo) GetBySymbolInRange(ctx context.Context, symbol, from, to string) ([]stock.Stock, error) {
	matched := []stock.Stock{}
	for _, r := range s.rows {
		if r.Symbol != symbol {
			continue
		}
		if from != "" {
			if bound, err := time.Parse("2006-01-02", from); err == nil && r.Timestamp.Before(bound) {
				continue
			}
		}
		if to != "" {
			if bound, err := time.Parse("2006-01-02", to); err == nil && r.Timestamp.After(bound) {
				continue
			}
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func testStocks() []stock.Stock {
	day := func(d int) time.Time {
		return time.Date(2020, 3, d, 0, 0, 0, 0, time.UTC)
	}
	price := func(v float64) decimal.Decimal {
		return decimal.NewFromFloat(v)
	}
	return []stock.Stock{
		{Name: "American Airlines", Symbol: "AAL", Industry: "Industrials", Timestamp: day(10),
			Open: price(17.5), High: price(18.0), Low: price(17.1), Close: price(17.8), Volumes: 1000},
		{Name: "American Airlines", Symbol: "AAL", Industry: "Industrials", Timestamp: day(20),
			Open: price(12.1), High: price(12.9), Low: price(11.8), Close: price(12.3), Volumes: 2400},
		{Name: "Agilent Technologies", Symbol: "A", Industry: "Health Care", Timestamp: day(10),
			Open: price(71.3), High: price(72.0), Low: price(70.2), Close: price(71.1), Volumes: 300},
	}
}

func newStockRouter(repo stock.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := handlers.NewStockHandler(repo)

	stocks := engine.Group("/stocks")
	stocks.GET("/symbols", h.ListSymbols)
	stocks.GET("/:symbol", h.GetBySymbol)
	stocks.GET("/authed/:symbol", h.GetAuthedBySymbol)

	return engine
}

func doGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestListSymbols(t *testing.T) {
	engine := newStockRouter(&stubStockRepo{rows: testStocks()})

	t.Run("no query returns all symbols", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/symbols")
		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []stock.SymbolRow
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Len(t, rows, 3)
	})

	t.Run("industry substring match", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/symbols?industry=health")
		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []stock.SymbolRow
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "A", rows[0].Symbol)
	})

	t.Run("unknown industry is 404", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/symbols?industry=Banking")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Industry sector not found")
	})

	t.Run("extra key invalidates valid industry", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/symbols?industry=Tech&other=1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "only 'industry' is permitted")
	})

	t.Run("unknown key is 400", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/symbols?sector=Tech")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBySymbol(t *testing.T) {
	engine := newStockRouter(&stubStockRepo{rows: testStocks()})

	t.Run("known symbol returns single row", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/AAL")
		assert.Equal(t, http.StatusOK, rec.Code)

		var row stock.Stock
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &row))
		assert.Equal(t, "AAL", row.Symbol)
	})

	t.Run("unknown symbol is 404", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/ZZZZ")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "No entry for symbol in stocks database")
	})

	t.Run("lowercase symbol is 400", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/aal")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "1-5 capital letters")
	})

	t.Run("overlong symbol is 400", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/TOOLONG")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("symbol format checked before query params", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/aal?from=2020-03-15")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "1-5 capital letters")
	})

	t.Run("query parameters are rejected", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/AAL?industry=Tech")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No query parameters are permitted")
	})
}

func TestGetAuthedBySymbol(t *testing.T) {
	engine := newStockRouter(&stubStockRepo{rows: testStocks()})

	t.Run("no query returns single row", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/AAL")
		assert.Equal(t, http.StatusOK, rec.Code)

		var row stock.Stock
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &row))
		assert.Equal(t, "AAL", row.Symbol)
	})

	t.Run("from bound returns matching rows", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/AAL?from=2020-03-15")
		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []stock.Stock
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Len(t, rows, 1)
	})

	t.Run("to bound returns matching rows", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/AAL?to=2020-03-15")
		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []stock.Stock
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Len(t, rows, 1)
	})

	t.Run("range returns both rows", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/AAL?from=2020-03-01&to=2020-03-31")
		assert.Equal(t, http.StatusOK, rec.Code)

		var rows []stock.Stock
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Len(t, rows, 2)
	})

	t.Run("inverted range is 404 not 400", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/AAL?from=2020-01-01&to=2019-01-01")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "No entries available")
	})

	t.Run("empty range result is 404", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/AAL?from=2021-01-01")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "supplied date range")
	})

	t.Run("unknown query key is 400", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/AAL?date=2020-03-15")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Parameters allowed are 'from' and 'to'")
	})

	t.Run("bad symbol is 400", func(t *testing.T) {
		rec := doGet(t, engine, "/stocks/authed/toolong")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
