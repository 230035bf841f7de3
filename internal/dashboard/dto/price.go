package dto

import (
	"net/url"
	"strconv"
)

// PriceRecord is one trading day of OHLCV data.
type PriceRecord struct {
	Date       string  `json:"date"`
	OpenPrice  float64 `json:"open_price"`
	HighPrice  float64 `json:"high_price"`
	LowPrice   float64 `json:"low_price"`
	ClosePrice float64 `json:"close_price"`
	Volume     float64 `json:"volume"`
}

// RowDate implements chart.Row.
func (p PriceRecord) RowDate() string { return p.Date }

// PriceStats summarizes the full stored history of a stock.
type PriceStats struct {
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	AvgPrice     float64 `json:"avg_price"`
	TotalRecords float64 `json:"total_records"`
}

// PriceQuery filters the price list. Zero values are not sent.
type PriceQuery struct {
	StartDate string
	EndDate   string
	Limit     int
}

// Values encodes the query as URL parameters.
func (q PriceQuery) Values() url.Values {
	v := url.Values{}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// FetchPricesRequest asks the backend to ingest price history. Either a
// period preset or an explicit date range is sent.
type FetchPricesRequest struct {
	Symbol    string `json:"symbol"`
	Period    string `json:"period,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// FetchPricesResult reports the outcome of an ingestion run.
type FetchPricesResult struct {
	TotalFetched int `json:"total_fetched"`
	NewRecords   int `json:"new_records"`
}
