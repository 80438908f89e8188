package engine

// Profit math for a single buy/sell leg. Loss-making figures are valid and
// representable throughout; presentation of negative percentages is the
// shaper's concern, not this file's.

// Profit returns the absolute profit (s-b)*q for buying q units at b and
// selling at s. b and q must be positive; s may be anything, so losses come
// out negative.
func Profit(b, s float64, q int32) (float64, error) {
	if b <= 0 {
		return 0, &InvalidInputError{Field: "buy_price", Reason: "must be positive"}
	}
	if q <= 0 {
		return 0, &InvalidInputError{Field: "quantity", Reason: "must be positive"}
	}
	return (s - b) * float64(q), nil
}

// MarginPercent returns ((s-b)/b)*100. b must be positive; validating here is
// what keeps division by zero out of the whole engine.
func MarginPercent(b, s float64) (float64, error) {
	if b <= 0 {
		return 0, &InvalidInputError{Field: "buy_price", Reason: "must be positive"}
	}
	return (s - b) / b * 100, nil
}

// BaseProfitPercent is the per-unit profit percentage, independent of any
// quantity. Numerically identical to MarginPercent but exposed separately:
// callers may ask for it without having picked a quantity yet.
func BaseProfitPercent(b, s float64) (float64, error) {
	return MarginPercent(b, s)
}
