package dto

import (
	"net/url"
	"strconv"
)

// TrendBullish is the trend value rendered with the upward indicator.
const TrendBullish = "bullish"

// Projection is a backend-computed linear trend extrapolation.
type Projection struct {
	LastPrice       float64           `json:"last_price"`
	Trend           string            `json:"trend"`
	DailyChangeRate float64           `json:"daily_change_rate"`
	RSquared        float64           `json:"r_squared"`
	Projections     []ProjectionPoint `json:"projections"`
}

// IsBullish reports whether the trend points upward.
func (p Projection) IsBullish() bool {
	return p.Trend == TrendBullish
}

// ProjectionPoint is one projected future close.
type ProjectionPoint struct {
	Date           string  `json:"date"`
	ProjectedPrice float64 `json:"projected_price"`
}

// RowDate implements chart.Row.
func (p ProjectionPoint) RowDate() string { return p.Date }

// ProjectionQuery parameterizes the projection endpoint.
type ProjectionQuery struct {
	DaysAhead    int
	LookbackDays int
}

// Values encodes the query as URL parameters.
func (q ProjectionQuery) Values() url.Values {
	v := url.Values{}
	v.Set("days_ahead", strconv.Itoa(q.DaysAhead))
	v.Set("lookback_days", strconv.Itoa(q.LookbackDays))
	return v
}

// MovingAverageRow pairs a close with its rolling mean. The mean is null
// until the window has filled.
type MovingAverageRow struct {
	Date          string   `json:"date"`
	ClosePrice    float64  `json:"close_price"`
	MovingAverage *float64 `json:"moving_average"`
}

// RowDate implements chart.Row.
func (m MovingAverageRow) RowDate() string { return m.Date }

// VolatilityResult is the backend's dispersion summary. Percent fields are
// already scaled to percentages.
type VolatilityResult struct {
	Volatility     float64 `json:"volatility"`
	AvgDailyReturn float64 `json:"avg_daily_return"`
	PriceRangePct  float64 `json:"price_range_pct"`
	MinPrice       float64 `json:"min_price"`
	MaxPrice       float64 `json:"max_price"`
}
