package dto

import (
	"time"

	"golang-stock-dashboard/pkg/utils"
)

// Period presets accepted by the ingestion endpoint, default first.
var PricePeriods = []string{"1mo", "3mo", "6mo", "1y", "2y", "5y", "max"}

// Screen actions submitted from the dashboard forms.
const (
	ActionQuickAdd      = "quick_add"
	ActionManualAdd     = "manual_add"
	ActionFetchPrices   = "fetch_prices"
	ActionDelete        = "delete"
	ActionHealth        = "health"
	ActionProjection    = "projection"
	ActionMovingAverage = "moving_average"
	ActionVolatility    = "volatility"
)

// QuickAddInput is the quick-add form.
type QuickAddInput struct {
	Symbol string `form:"symbol"`
}

// ManualAddInput is the manual-add form. Blank optional fields are sent
// as null.
type ManualAddInput struct {
	Symbol   string `form:"m_symbol"`
	Name     string `form:"m_name"`
	Sector   string `form:"m_sector"`
	Industry string `form:"m_industry"`
	Exchange string `form:"m_exchange"`
}

// FetchPricesInput is the ingestion form. The dates are only checked when
// the custom range is enabled.
type FetchPricesInput struct {
	Stock          string `form:"stock" query:"stock"`
	Period         string `form:"period" query:"period" validate:"oneof=1mo 3mo 6mo 1y 2y 5y max" label:"Period"`
	UseCustomRange bool   `form:"use_dates" query:"use_dates"`
	StartDate      string `form:"start_date" query:"start_date" validate:"required,datetime=2006-01-02" label:"Start Date"`
	EndDate        string `form:"end_date" query:"end_date" validate:"required,datetime=2006-01-02" label:"End Date"`
}

// NewFetchPricesInput returns the form defaults: one month preset and a
// 30-day custom range ending today.
func NewFetchPricesInput(now time.Time) FetchPricesInput {
	return FetchPricesInput{
		Period:    PricePeriods[0],
		StartDate: utils.FormatDate(utils.DaysBefore(now, 30)),
		EndDate:   utils.FormatDate(utils.Today(now)),
	}
}

// Request builds the ingestion payload for symbol. A custom range replaces
// the period preset.
func (in FetchPricesInput) Request(symbol string) FetchPricesRequest {
	if in.UseCustomRange {
		return FetchPricesRequest{Symbol: symbol, StartDate: in.StartDate, EndDate: in.EndDate}
	}
	return FetchPricesRequest{Symbol: symbol, Period: in.Period}
}

// PriceHistoryInput drives the price history screen.
type PriceHistoryInput struct {
	Stock     string `query:"stock"`
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02" label:"Start Date"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02" label:"End Date"`
	Limit     int    `query:"limit" validate:"min=10,max=1000" label:"Max Records"`
	ChartType string `query:"chart_type"`
}

// NewPriceHistoryInput returns the defaults: the last 90 days, 200 rows.
func NewPriceHistoryInput(now time.Time) PriceHistoryInput {
	return PriceHistoryInput{
		StartDate: utils.FormatDate(utils.DaysBefore(now, 90)),
		EndDate:   utils.FormatDate(utils.Today(now)),
		Limit:     200,
	}
}

// ProjectionsInput drives the three analysis tabs. Action names the tab
// whose calculation was requested, if any.
type ProjectionsInput struct {
	Stock              string `query:"stock"`
	Action             string `query:"action"`
	DaysAhead          int    `query:"days_ahead" validate:"min=7,max=90" label:"Days to Project"`
	LookbackDays       int    `query:"lookback_days" validate:"min=30,max=365" label:"Historical Days for Trend"`
	Window             int    `query:"window" validate:"min=5,max=100" label:"Moving Average Window (days)"`
	VolatilityLookback int    `query:"vol_lookback_days" validate:"min=7,max=180" label:"Analysis Period (days)"`
}

// NewProjectionsInput returns the slider defaults.
func NewProjectionsInput() ProjectionsInput {
	return ProjectionsInput{
		DaysAhead:          30,
		LookbackDays:       90,
		Window:             20,
		VolatilityLookback: 30,
	}
}
