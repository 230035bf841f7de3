package service

import (
	"context"
	"fmt"
	"strconv"

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/pkg/logger"
)

// dashboardColumns is the table projection, in display order.
var dashboardColumns = []string{"symbol", "name", "sector", "industry", "exchange", "is_active"}

// DashboardView is the overview screen.
type DashboardView struct {
	Error   *Message
	Hint    *Message
	Notice  *Message
	Metrics []Metric
	Table   *Table
}

// DashboardService builds the overview screen.
type DashboardService interface {
	Render(ctx context.Context) *DashboardView
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(backend repository.BackendRepository, cfg config.Backend, log *logger.Logger) DashboardService {
	return &dashboardService{backend: backend, cfg: cfg, logger: log}
}

type dashboardService struct {
	backend repository.BackendRepository
	cfg     config.Backend
	logger  *logger.Logger
}

func (s *dashboardService) Render(ctx context.Context) *DashboardView {
	stocks, err := s.backend.ListStocks(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to load stocks for dashboard", logger.ErrorField(err))
		return &DashboardView{
			Error: errorMessage(err),
			Hint:  info(fmt.Sprintf("Make sure the backend API is running on %s", s.cfg.BaseURL)),
		}
	}

	if stocks.Len() == 0 {
		return &DashboardView{Notice: info("No stocks in database. Add some stocks from the Stock Management page.")}
	}

	sectors := make(map[string]struct{})
	active := 0
	for _, st := range stocks.Stocks {
		if st.Sector != nil && *st.Sector != "" {
			sectors[*st.Sector] = struct{}{}
		}
		if st.IsActive {
			active++
		}
	}

	return &DashboardView{
		Metrics: []Metric{
			{Label: "Total Stocks", Value: strconv.Itoa(stocks.Len())},
			{Label: "Sectors", Value: strconv.Itoa(len(sectors))},
			{Label: "Active Stocks", Value: strconv.Itoa(active)},
		},
		Table: stockTable(stocks),
	}
}

// stockTable keeps only the display columns the backend actually sent.
func stockTable(stocks *dto.StockList) *Table {
	var cols []string
	for _, c := range dashboardColumns {
		if stocks.HasKey(c) {
			cols = append(cols, c)
		}
	}

	t := &Table{Columns: cols}
	for _, st := range stocks.Stocks {
		row := make([]string, 0, len(cols))
		for _, c := range cols {
			row = append(row, stockCell(st, c))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func stockCell(st dto.Stock, column string) string {
	switch column {
	case "symbol":
		return st.Symbol
	case "name":
		return st.Name
	case "sector":
		return orBlank(st.Sector)
	case "industry":
		return orBlank(st.Industry)
	case "exchange":
		return orBlank(st.Exchange)
	case "is_active":
		return yesNo(st.IsActive)
	}
	return ""
}
