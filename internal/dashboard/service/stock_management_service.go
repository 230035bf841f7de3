package service

import (
	"context"
	"fmt"
	"strings"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const noStocksYet = "No stocks found. Add some stocks first!"

// StockManagementRequest carries the submitted action, if any, and the
// form values of every sub-flow.
type StockManagementRequest struct {
	Action    string
	QuickAdd  dto.QuickAddInput
	ManualAdd dto.ManualAddInput
	Fetch     dto.FetchPricesInput
	Flash     *Message
}

// StockItem is one expandable entry of the stock list.
type StockItem struct {
	ID       int64
	Title    string
	Sector   string
	Industry string
	Exchange string
	Active   string
}

// FetchPricesSection is the ingestion tab.
type FetchPricesSection struct {
	Message *Message
	Picker  *StockPicker
	Periods []string
	Input   dto.FetchPricesInput
	Result  *Message
}

// StockManagementView is the registry screen with its three tabs.
type StockManagementView struct {
	Flash           *Message
	QuickAddResult  *Message
	ManualAddResult *Message
	ListMessage     *Message
	Stocks          []StockItem
	Fetch           FetchPricesSection
}

// StockManagementService runs the add, list, delete and ingest flows.
type StockManagementService interface {
	Render(ctx context.Context, req StockManagementRequest) *StockManagementView
	Delete(ctx context.Context, id int64) *Message
}

// NewStockManagementService creates a new StockManagementService.
func NewStockManagementService(backend repository.BackendRepository, validate *validator.Validate, log *logger.Logger) StockManagementService {
	return &stockManagementService{backend: backend, validate: validate, logger: log}
}

type stockManagementService struct {
	backend  repository.BackendRepository
	validate *validator.Validate
	logger   *logger.Logger
}

// Render runs the submitted action first so that the list and the
// selector below reflect its outcome.
func (s *stockManagementService) Render(ctx context.Context, req StockManagementRequest) *StockManagementView {
	view := &StockManagementView{Flash: req.Flash}

	switch req.Action {
	case dto.ActionQuickAdd:
		view.QuickAddResult = s.quickAdd(ctx, req.QuickAdd)
	case dto.ActionManualAdd:
		view.ManualAddResult = s.manualAdd(ctx, req.ManualAdd)
	}

	if stocks, err := s.backend.ListStocks(ctx); err != nil {
		view.ListMessage = errorMessage(err)
	} else if stocks.Len() == 0 {
		view.ListMessage = info(noStocksYet)
	} else {
		for _, st := range stocks.Stocks {
			view.Stocks = append(view.Stocks, StockItem{
				ID:       st.ID,
				Title:    st.Label(),
				Sector:   orNA(st.Sector),
				Industry: orNA(st.Industry),
				Exchange: orNA(st.Exchange),
				Active:   yesNo(st.IsActive),
			})
		}
	}

	view.Fetch = s.fetchSection(ctx, req)
	return view
}

func (s *stockManagementService) quickAdd(ctx context.Context, in dto.QuickAddInput) *Message {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	if symbol == "" {
		return warning("Please enter a stock symbol")
	}

	stock, err := s.backend.FetchStock(ctx, symbol)
	if err != nil {
		return errorMessage(err)
	}
	s.logger.InfoContext(ctx, "Stock added from market data", logger.StringField("symbol", stock.Symbol))
	return success(fmt.Sprintf("Added %s - %s", stock.Symbol, stock.Name))
}

func (s *stockManagementService) manualAdd(ctx context.Context, in dto.ManualAddInput) *Message {
	symbol := strings.ToUpper(strings.TrimSpace(in.Symbol))
	name := strings.TrimSpace(in.Name)
	if symbol == "" || name == "" {
		return warning("Symbol and Name are required")
	}

	stock, err := s.backend.CreateStock(ctx, dto.CreateStockRequest{
		Symbol:   symbol,
		Name:     name,
		Sector:   optional(in.Sector),
		Industry: optional(in.Industry),
		Exchange: optional(in.Exchange),
	})
	if err != nil {
		return errorMessage(err)
	}
	s.logger.InfoContext(ctx, "Stock added manually", logger.StringField("symbol", stock.Symbol))
	return success(fmt.Sprintf("Added %s - %s", stock.Symbol, stock.Name))
}

// fetchSection lists the stocks again for the selector, independently of
// the list tab, and runs the ingestion when requested.
func (s *stockManagementService) fetchSection(ctx context.Context, req StockManagementRequest) FetchPricesSection {
	section := FetchPricesSection{Periods: dto.PricePeriods, Input: req.Fetch}

	stocks, err := s.backend.ListStocks(ctx)
	if err != nil {
		section.Message = errorMessage(err)
		return section
	}
	if stocks.Len() == 0 {
		section.Message = info(noStocksYet)
		return section
	}

	stock, picker := pickStock(stocks, req.Fetch.Stock)
	section.Picker = &picker
	section.Input.Stock = picker.Selected

	if req.Action != dto.ActionFetchPrices {
		return section
	}

	fields := []string{"Period"}
	if req.Fetch.UseCustomRange {
		fields = []string{"StartDate", "EndDate"}
	}
	if msg := validationWarning(s.validate.StructPartial(req.Fetch, fields...)); msg != nil {
		section.Result = msg
		return section
	}

	result, err := s.backend.FetchPrices(ctx, req.Fetch.Request(stock.Symbol))
	if err != nil {
		section.Result = errorMessage(err)
		return section
	}

	s.logger.InfoContext(ctx, "Price history fetched",
		logger.StringField("symbol", stock.Symbol),
		logger.IntField("total_fetched", result.TotalFetched),
		logger.IntField("new_records", result.NewRecords))
	section.Result = success(fmt.Sprintf("Fetched %d prices, %d new records added.", result.TotalFetched, result.NewRecords))
	return section
}

func (s *stockManagementService) Delete(ctx context.Context, id int64) *Message {
	if err := s.backend.DeleteStock(ctx, id); err != nil {
		return errorMessage(err)
	}
	s.logger.InfoContext(ctx, "Stock deleted", logger.Field("stock_id", id))
	return success("Deleted!")
}
