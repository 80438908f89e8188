package engine

import "fmt"

// InvalidInputError reports malformed trade constraints: non-positive budget,
// capacity or quantity, a zero buy price, or an unknown location. The query is
// aborted before any computation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// NoCatalogDataError reports an empty or unavailable market snapshot. It is
// deliberately distinct from the no-profitable-route outcome, which is not an
// error at all.
type NoCatalogDataError struct {
	Detail string
}

func (e *NoCatalogDataError) Error() string {
	if e.Detail == "" {
		return "no catalog data available"
	}
	return "no catalog data available: " + e.Detail
}
