package dto

// SpreadRow is one dated point of the US/JP 10-year yield spread.
//
// The jp10y value is a configured placeholder (see config.SpreadConfig),
// not fetched ground truth. All values are rounded to 4 decimal places.
type SpreadRow struct {
	Date   string  `json:"date" example:"2024-01-02"`
	US10Y  float64 `json:"us10y" example:"3.9520"`
	JP10Y  float64 `json:"jp10y" example:"1.0"`
	Spread float64 `json:"spread" example:"2.9520"`
}

// FxRow is one dated USD/JPY observation, rounded to 4 decimal places.
// Rate carries the daily close.
type FxRow struct {
	Date string  `json:"date" example:"2024-01-02"`
	Rate float64 `json:"rate" example:"148.5"`
	High float64 `json:"high" example:"149.0"`
	Low  float64 `json:"low" example:"148.0"`
}

// CommodityRow is one dated futures observation, rounded to 2 decimal
// places. Change is the intraday move (close minus open).
type CommodityRow struct {
	Date   string  `json:"date" example:"2024-01-02"`
	Price  float64 `json:"price" example:"2064.4"`
	Change float64 `json:"change" example:"-5.3"`
}

// CommoditySet groups the commodity series by instrument key.
// A failed fetch leaves its key as an empty list, never null.
type CommoditySet struct {
	Gold []CommodityRow `json:"gold"`
	Oil  []CommodityRow `json:"oil"`
}
