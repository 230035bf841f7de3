package service

import (
	"context"
	"fmt"

	"golang-stock-dashboard/internal/dashboard/chart"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	glyphUp   = "📈"
	glyphDown = "📉"
)

// tabFields names the inputs each analysis tab depends on.
var tabFields = map[string][]string{
	dto.ActionProjection:    {"DaysAhead", "LookbackDays"},
	dto.ActionMovingAverage: {"Window"},
	dto.ActionVolatility:    {"VolatilityLookback"},
}

// AnalysisTab is the result area of one tab. Nothing is set until the
// tab's calculation has been requested.
type AnalysisTab struct {
	Message *Message
	Metrics []Metric
	Caption string
	Chart   *chart.Figure
}

// ProjectionsView is the analysis screen.
type ProjectionsView struct {
	Message       *Message
	Picker        *StockPicker
	Input         dto.ProjectionsInput
	Projection    AnalysisTab
	MovingAverage AnalysisTab
	Volatility    AnalysisTab
}

// ProjectionsService builds the analysis screen.
type ProjectionsService interface {
	Render(ctx context.Context, in dto.ProjectionsInput) *ProjectionsView
}

// NewProjectionsService creates a new ProjectionsService.
func NewProjectionsService(backend repository.BackendRepository, validate *validator.Validate, log *logger.Logger) ProjectionsService {
	return &projectionsService{backend: backend, validate: validate, logger: log}
}

type projectionsService struct {
	backend  repository.BackendRepository
	validate *validator.Validate
	logger   *logger.Logger
}

func (s *projectionsService) Render(ctx context.Context, in dto.ProjectionsInput) *ProjectionsView {
	view := &ProjectionsView{Input: in}

	stocks, err := s.backend.ListStocks(ctx)
	if err != nil {
		view.Message = errorMessage(err)
		return view
	}
	if stocks.Len() == 0 {
		view.Message = info(noStocksYet)
		return view
	}

	stock, picker := pickStock(stocks, in.Stock)
	view.Picker = &picker
	view.Input.Stock = picker.Selected

	fields, ok := tabFields[in.Action]
	if !ok {
		return view
	}

	var tab *AnalysisTab
	switch in.Action {
	case dto.ActionProjection:
		tab = &view.Projection
	case dto.ActionMovingAverage:
		tab = &view.MovingAverage
	case dto.ActionVolatility:
		tab = &view.Volatility
	}

	if msg := validationWarning(s.validate.StructPartial(in, fields...)); msg != nil {
		tab.Message = msg
		return view
	}

	switch in.Action {
	case dto.ActionProjection:
		*tab = s.projection(ctx, stock, in)
	case dto.ActionMovingAverage:
		*tab = s.movingAverage(ctx, stock, in.Window)
	case dto.ActionVolatility:
		*tab = s.volatility(ctx, stock, in.VolatilityLookback)
	}
	return view
}

func (s *projectionsService) projection(ctx context.Context, stock dto.Stock, in dto.ProjectionsInput) AnalysisTab {
	proj, err := s.backend.Projection(ctx, stock.ID, dto.ProjectionQuery{
		DaysAhead:    in.DaysAhead,
		LookbackDays: in.LookbackDays,
	})
	if err != nil {
		return AnalysisTab{Message: errorMessage(err)}
	}

	delta := glyphDown
	if proj.IsBullish() {
		delta = glyphUp
	}
	tab := AnalysisTab{
		Metrics: []Metric{
			{Label: "Last Price", Value: usd(proj.LastPrice, 2)},
			{Label: "Trend", Value: capitalize(proj.Trend), Delta: delta},
			{Label: "Daily Change", Value: usd(proj.DailyChangeRate, 4)},
		},
		Caption: fmt.Sprintf("R-squared: %s (higher = more reliable trend)", fixed(proj.RSquared, 4)),
	}

	projected, err := chart.Normalize(proj.Projections)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to normalize projection", logger.StringField("symbol", stock.Symbol), logger.ErrorField(err))
		tab.Message = errorMessage(err)
		return tab
	}

	// The recent closes are a best-effort backdrop: any failure drops them.
	var history chart.Series[dto.PriceRecord]
	if prices, err := s.backend.ListPrices(ctx, stock.ID, dto.PriceQuery{Limit: in.LookbackDays}); err == nil {
		if normalized, err := chart.Normalize(prices); err == nil {
			history = normalized
		}
	}

	fig := chart.ProjectionFigure(stock.Symbol, history, projected)
	tab.Chart = &fig
	return tab
}

func (s *projectionsService) movingAverage(ctx context.Context, stock dto.Stock, window int) AnalysisTab {
	rows, err := s.backend.MovingAverage(ctx, stock.ID, window)
	if err != nil {
		return AnalysisTab{Message: errorMessage(err)}
	}
	if len(rows) == 0 {
		return AnalysisTab{Message: warning("No data available for moving average calculation")}
	}

	series, err := chart.Normalize(rows)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to normalize moving average", logger.StringField("symbol", stock.Symbol), logger.ErrorField(err))
		return AnalysisTab{Message: errorMessage(err)}
	}

	fig := chart.MovingAverageFigure(stock.Symbol, window, series)
	return AnalysisTab{Chart: &fig}
}

func (s *projectionsService) volatility(ctx context.Context, stock dto.Stock, lookbackDays int) AnalysisTab {
	vol, err := s.backend.Volatility(ctx, stock.ID, lookbackDays)
	if err != nil {
		return AnalysisTab{Message: errorMessage(err)}
	}

	return AnalysisTab{Metrics: []Metric{
		{Label: "Annualized Volatility", Value: percent(vol.Volatility, 2)},
		{Label: "Average Daily Return", Value: percent(vol.AvgDailyReturn, 4)},
		{Label: "Price Range", Value: percent(vol.PriceRangePct, 2)},
		{Label: "Min/Max", Value: fmt.Sprintf("%s - %s", usd(vol.MinPrice, 2), usd(vol.MaxPrice, 2))},
	}}
}
