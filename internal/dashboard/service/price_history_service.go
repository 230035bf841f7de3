package service

import (
	"context"

	"golang-stock-dashboard/internal/dashboard/chart"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/logger"

	"github.com/go-playground/validator/v10"
)

var priceColumns = []string{"date", "open_price", "high_price", "low_price", "close_price", "volume"}

// PriceHistoryView is the price history screen. Everything below Picker
// is derived from one sorted series.
type PriceHistoryView struct {
	Message     *Message
	Picker      *StockPicker
	Input       dto.PriceHistoryInput
	ChartKinds  []chart.PriceChartKind
	ChartKind   chart.PriceChartKind
	Metrics     []Metric
	PriceChart  *chart.Figure
	VolumeChart *chart.Figure
	Table       *Table
}

// PriceHistoryService builds the price history screen.
type PriceHistoryService interface {
	Render(ctx context.Context, in dto.PriceHistoryInput) *PriceHistoryView
}

// NewPriceHistoryService creates a new PriceHistoryService.
func NewPriceHistoryService(backend repository.BackendRepository, validate *validator.Validate, log *logger.Logger) PriceHistoryService {
	return &priceHistoryService{backend: backend, validate: validate, logger: log}
}

type priceHistoryService struct {
	backend  repository.BackendRepository
	validate *validator.Validate
	logger   *logger.Logger
}

func (s *priceHistoryService) Render(ctx context.Context, in dto.PriceHistoryInput) *PriceHistoryView {
	view := &PriceHistoryView{
		Input:      in,
		ChartKinds: chart.PriceChartKinds,
		ChartKind:  chart.ParsePriceChartKind(in.ChartType),
	}
	view.Input.ChartType = string(view.ChartKind)

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

	if msg := validationWarning(s.validate.Struct(in)); msg != nil {
		view.Message = msg
		return view
	}

	prices, err := s.backend.ListPrices(ctx, stock.ID, dto.PriceQuery{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Limit:     in.Limit,
	})
	if err != nil {
		view.Message = errorMessage(err)
		return view
	}
	if len(prices) == 0 {
		view.Message = warning("No price data found. Fetch historical prices from Stock Management.")
		return view
	}

	series, err := chart.Normalize(prices)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to normalize price history", logger.StringField("symbol", stock.Symbol), logger.ErrorField(err))
		view.Message = errorMessage(err)
		return view
	}

	// Stats deliberately cover the whole stored history, not the range above.
	if stats, err := s.backend.PriceStats(ctx, stock.ID); err == nil {
		view.Metrics = []Metric{
			{Label: "Min Price", Value: usd(stats.MinPrice, 2)},
			{Label: "Max Price", Value: usd(stats.MaxPrice, 2)},
			{Label: "Avg Price", Value: usd(stats.AvgPrice, 2)},
			{Label: "Total Records", Value: fixed(stats.TotalRecords, 0)},
		}
	}

	priceFig := chart.PriceFigure(stock.Symbol, series, view.ChartKind)
	volumeFig := chart.VolumeFigure(series)
	view.PriceChart = &priceFig
	view.VolumeChart = &volumeFig
	view.Table = priceTable(series)
	return view
}

func priceTable(series chart.Series[dto.PriceRecord]) *Table {
	t := &Table{Columns: priceColumns}
	dates := series.X()
	for i, r := range series.Rows() {
		t.Rows = append(t.Rows, []string{
			dates[i],
			fixed(r.OpenPrice, 2),
			fixed(r.HighPrice, 2),
			fixed(r.LowPrice, 2),
			fixed(r.ClosePrice, 2),
			fixed(r.Volume, 0),
		})
	}
	return t
}
