package stock

import "net/url"

// FilterKind identifies the shape of a validated query filter.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterIndustry
	FilterDateFrom
	FilterDateTo
	FilterDateRange
)

// Filter is the resolved intent of a request's query string. A filter is
// never partially valid: each parser either returns exactly one shape or an
// error for the whole request.
type Filter struct {
	Kind     FilterKind
	Industry string // FilterIndustry: substring to match
	From     string // FilterDateFrom, FilterDateRange
	To       string // FilterDateTo, FilterDateRange
}

// ParseSymbolsQuery validates the query string for the symbols listing.
// Accepts an empty query or exactly the 'industry' key.
func ParseSymbolsQuery(query url.Values) (Filter, error) {
	if len(query) == 0 {
		return Filter{Kind: FilterNone}, nil
	}
	if len(query) == 1 && query.Get("industry") != "" {
		return Filter{Kind: FilterIndustry, Industry: query.Get("industry")}, nil
	}
	return Filter{}, ErrInvalidIndustryQuery
}

// ParseSymbolQuery validates the query string for the single-symbol route,
// which permits no query parameters at all.
func ParseSymbolQuery(query url.Values) (Filter, error) {
	if len(query) != 0 {
		return Filter{}, ErrNoParamsAllowed
	}
	return Filter{Kind: FilterNone}, nil
}

// ParseAuthedQuery validates the query string for the authed symbol route.
// Accepts an empty query, 'from' alone, 'to' alone, or both together.
// A range with from > to is a valid filter that yields zero rows; it is not
// rejected here.
func ParseAuthedQuery(query url.Values) (Filter, error) {
	from := query.Get("from")
	to := query.Get("to")

	switch {
	case len(query) == 0:
		return Filter{Kind: FilterNone}, nil
	case len(query) == 1 && from != "":
		return Filter{Kind: FilterDateFrom, From: from}, nil
	case len(query) == 1 && to != "":
		return Filter{Kind: FilterDateTo, To: to}, nil
	case len(query) == 2 && from != "" && to != "":
		return Filter{Kind: FilterDateRange, From: from, To: to}, nil
	}
	return Filter{}, ErrInvalidDateQuery
}
