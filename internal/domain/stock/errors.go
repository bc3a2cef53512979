package stock

import "errors"

var (
	// Validation errors
	ErrInvalidSymbol        = errors.New("invalid stock symbol format")
	ErrInvalidIndustryQuery = errors.New("invalid query parameter for symbols route")
	ErrNoParamsAllowed      = errors.New("no query parameters permitted on this route")
	ErrInvalidDateQuery     = errors.New("invalid date query parameters")

	// Data errors
	ErrSymbolNotFound = errors.New("symbol not found")
)
