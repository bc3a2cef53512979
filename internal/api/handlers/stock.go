package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurohotvedt/cab230serverside/internal/api/response"
	"github.com/gurohotvedt/cab230serverside/internal/domain/stock"
)

// StockHandler handles stock-related HTTP requests
type StockHandler struct {
	stockRepo stock.Repository
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockRepo stock.Repository) *StockHandler {
	return &StockHandler{stockRepo: stockRepo}
}

// ListSymbols handles GET /stocks/symbols
func (h *StockHandler) ListSymbols(c *gin.Context) {
	filter, err := stock.ParseSymbolsQuery(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, "Invalid query parameter: only 'industry' is permitted")
		return
	}

	switch filter.Kind {
	case stock.FilterIndustry:
		rows, err := h.stockRepo.ListByIndustry(c.Request.Context(), filter.Industry)
		if err != nil {
			response.InternalError(c, err)
			return
		}
		if len(rows) == 0 {
			response.NotFound(c, "Industry sector not found")
			return
		}
		c.JSON(http.StatusOK, rows)

	default:
		rows, err := h.stockRepo.ListSymbols(c.Request.Context())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GetBySymbol handles GET /stocks/:symbol
func (h *StockHandler) GetBySymbol(c *gin.Context) {
	symbol := c.Param("symbol")

	// Path segment is checked before the query string
	if !stock.ValidateSymbol(symbol) {
		response.BadRequest(c, "Stock symbol incorrect format - must be 1-5 capital letters")
		return
	}

	if _, err := stock.ParseSymbolQuery(c.Request.URL.Query()); err != nil {
		response.BadRequest(c, "No query parameters are permitted on this route")
		return
	}

	s, err := h.stockRepo.GetBySymbol(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, stock.ErrSymbolNotFound) {
			response.NotFound(c, "No entry for symbol in stocks database")
			return
		}
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// GetAuthedBySymbol handles GET /stocks/authed/:symbol
func (h *StockHandler) GetAuthedBySymbol(c *gin.Context) {
	symbol := c.Param("symbol")

	if !stock.ValidateSymbol(symbol) {
		response.BadRequest(c, "Stock symbol incorrect format - must be 1-5 capital letters")
		return
	}

	filter, err := stock.ParseAuthedQuery(c.Request.URL.Query())
	if err != nil {
		response.BadRequest(c, "Parameters allowed are 'from' and 'to', example: /stocks/authed/AAL?from=2020-03-15")
		return
	}

	if filter.Kind == stock.FilterNone {
		s, err := h.stockRepo.GetBySymbol(c.Request.Context(), symbol)
		if err != nil {
			if errors.Is(err, stock.ErrSymbolNotFound) {
				response.NotFound(c, "No entry for symbol in stocks database")
				return
			}
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
		return
	}

	// An inverted range is a valid filter that matches nothing, so it falls
	// through to the empty-result 404 rather than a 400.
	rows, err := h.stockRepo.GetBySymbolInRange(c.Request.Context(), symbol, filter.From, filter.To)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if len(rows) == 0 {
		response.NotFound(c, "No entries available for query symbol for supplied date range")
		return
	}

	c.JSON(http.StatusOK, rows)
}
