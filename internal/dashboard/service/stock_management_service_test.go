package service

import (
	"context"
	"net/http"
	"testing"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStockManagement(t *testing.T, routes map[string]reply) (StockManagementService, *fakeBackend) {
	t.Helper()
	if _, ok := routes["GET /api/v1/stocks/"]; !ok {
		routes["GET /api/v1/stocks/"] = reply{http.StatusOK, twoStocks}
	}
	fb := newFakeBackend(t, routes)
	return NewStockManagementService(fb.repository(), NewValidator(), logger.NewNop()), fb
}

func TestQuickAdd_UppercasesSymbol(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{
		"POST /api/v1/stocks/fetch/AAPL": {http.StatusCreated, `{"id":1,"symbol":"AAPL","name":"Apple Inc."}`},
	})

	view := svc.Render(context.Background(), StockManagementRequest{
		Action:   dto.ActionQuickAdd,
		QuickAdd: dto.QuickAddInput{Symbol: "  aapl "},
		Fetch:    dto.NewFetchPricesInput(fixedClock()),
	})

	require.NotNil(t, view.QuickAddResult)
	assert.Equal(t, LevelSuccess, view.QuickAddResult.Level)
	assert.Equal(t, "Added AAPL - Apple Inc.", view.QuickAddResult.Text)
	assert.Len(t, fb.find(http.MethodPost, "/api/v1/stocks/fetch/AAPL"), 1)
}

func TestQuickAdd_BlankSymbol(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{})

	view := svc.Render(context.Background(), StockManagementRequest{
		Action:   dto.ActionQuickAdd,
		QuickAdd: dto.QuickAddInput{Symbol: "   "},
	})

	require.NotNil(t, view.QuickAddResult)
	assert.Equal(t, LevelWarning, view.QuickAddResult.Level)
	assert.Equal(t, "Please enter a stock symbol", view.QuickAddResult.Text)
	for _, c := range fb.calls {
		assert.Equal(t, http.MethodGet, c.method)
	}
}

func TestQuickAdd_BackendDetail(t *testing.T) {
	svc, _ := newStockManagement(t, map[string]reply{
		"POST /api/v1/stocks/fetch/ZZZZ": {http.StatusNotFound, `{"detail":"Could not fetch info for ZZZZ"}`},
	})

	view := svc.Render(context.Background(), StockManagementRequest{
		Action:   dto.ActionQuickAdd,
		QuickAdd: dto.QuickAddInput{Symbol: "zzzz"},
	})

	require.NotNil(t, view.QuickAddResult)
	assert.Equal(t, &Message{Level: LevelError, Text: "Could not fetch info for ZZZZ"}, view.QuickAddResult)
}

func TestManualAdd_BlankOptionalFieldsAreNull(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{
		"POST /api/v1/stocks/": {http.StatusCreated, `{"id":5,"symbol":"ACME","name":"Acme Corp"}`},
	})

	view := svc.Render(context.Background(), StockManagementRequest{
		Action: dto.ActionManualAdd,
		ManualAdd: dto.ManualAddInput{
			Symbol:   "acme",
			Name:     "Acme Corp",
			Sector:   "",
			Industry: "  ",
			Exchange: "NYSE",
		},
	})

	require.NotNil(t, view.ManualAddResult)
	assert.Equal(t, "Added ACME - Acme Corp", view.ManualAddResult.Text)
	posts := fb.find(http.MethodPost, "/api/v1/stocks/")
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{"symbol":"ACME","name":"Acme Corp","sector":null,"industry":null,"exchange":"NYSE"}`, posts[0].body)
}

func TestManualAdd_RequiresSymbolAndName(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{})

	view := svc.Render(context.Background(), StockManagementRequest{
		Action:    dto.ActionManualAdd,
		ManualAdd: dto.ManualAddInput{Symbol: "ACME"},
	})

	require.NotNil(t, view.ManualAddResult)
	assert.Equal(t, LevelWarning, view.ManualAddResult.Level)
	assert.Equal(t, "Symbol and Name are required", view.ManualAddResult.Text)
	assert.Empty(t, fb.find(http.MethodPost, "/api/v1/stocks/"))
}

func TestStockList_DetailFallbacks(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{})

	view := svc.Render(context.Background(), StockManagementRequest{Fetch: dto.NewFetchPricesInput(fixedClock())})

	require.Nil(t, view.ListMessage)
	require.Len(t, view.Stocks, 2)
	assert.Equal(t, StockItem{
		ID: 1, Title: "AAPL - Apple Inc.", Sector: "Technology",
		Industry: "Consumer Electronics", Exchange: "NASDAQ", Active: "Yes",
	}, view.Stocks[0])
	assert.Equal(t, StockItem{
		ID: 2, Title: "XOM - Exxon Mobil", Sector: "N/A",
		Industry: "N/A", Exchange: "N/A", Active: "No",
	}, view.Stocks[1])

	// The list tab and the fetch tab each load the stocks.
	assert.Len(t, fb.find(http.MethodGet, "/api/v1/stocks/"), 2)
	require.NotNil(t, view.Fetch.Picker)
	assert.Equal(t, []string{"AAPL - Apple Inc.", "XOM - Exxon Mobil"}, view.Fetch.Picker.Options)
	assert.Equal(t, "AAPL - Apple Inc.", view.Fetch.Picker.Selected)
	assert.Nil(t, view.Fetch.Result)
}

func TestStockList_Empty(t *testing.T) {
	svc, _ := newStockManagement(t, map[string]reply{
		"GET /api/v1/stocks/": {http.StatusOK, `[]`},
	})

	view := svc.Render(context.Background(), StockManagementRequest{})

	assert.Equal(t, info("No stocks found. Add some stocks first!"), view.ListMessage)
	assert.Equal(t, info("No stocks found. Add some stocks first!"), view.Fetch.Message)
	assert.Nil(t, view.Fetch.Picker)
}

func TestFetchPrices_Preset(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{
		"POST /api/v1/prices/fetch": {http.StatusOK, `{"total_fetched":126,"new_records":120}`},
	})
	in := dto.NewFetchPricesInput(fixedClock())
	in.Stock = "XOM - Exxon Mobil"
	in.Period = "6mo"

	view := svc.Render(context.Background(), StockManagementRequest{Action: dto.ActionFetchPrices, Fetch: in})

	assert.Equal(t, success("Fetched 126 prices, 120 new records added."), view.Fetch.Result)
	assert.Equal(t, "XOM - Exxon Mobil", view.Fetch.Picker.Selected)
	posts := fb.find(http.MethodPost, "/api/v1/prices/fetch")
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{"symbol":"XOM","period":"6mo"}`, posts[0].body)
}

func TestFetchPrices_CustomRangeReplacesPeriod(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{
		"POST /api/v1/prices/fetch": {http.StatusOK, `{"total_fetched":21,"new_records":0}`},
	})
	in := dto.NewFetchPricesInput(fixedClock())
	in.UseCustomRange = true

	view := svc.Render(context.Background(), StockManagementRequest{Action: dto.ActionFetchPrices, Fetch: in})

	assert.Equal(t, success("Fetched 21 prices, 0 new records added."), view.Fetch.Result)
	posts := fb.find(http.MethodPost, "/api/v1/prices/fetch")
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{"symbol":"AAPL","start_date":"2024-02-14","end_date":"2024-03-15"}`, posts[0].body)
}

func TestFetchPrices_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input func(in *dto.FetchPricesInput)
		want  string
	}{
		{
			name:  "unknown period",
			input: func(in *dto.FetchPricesInput) { in.Period = "10y" },
			want:  "Period must be one of 1mo, 3mo, 6mo, 1y, 2y, 5y, max",
		},
		{
			name: "malformed custom date",
			input: func(in *dto.FetchPricesInput) {
				in.UseCustomRange = true
				in.StartDate = "15/03/2024"
			},
			want: "Start Date must be a date in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fb := newStockManagement(t, map[string]reply{})
			in := dto.NewFetchPricesInput(fixedClock())
			tt.input(&in)

			view := svc.Render(context.Background(), StockManagementRequest{Action: dto.ActionFetchPrices, Fetch: in})

			assert.Equal(t, warning(tt.want), view.Fetch.Result)
			assert.Empty(t, fb.find(http.MethodPost, "/api/v1/prices/fetch"))
		})
	}
}

func TestDelete(t *testing.T) {
	svc, fb := newStockManagement(t, map[string]reply{
		"DELETE /api/v1/stocks/2": {http.StatusNoContent, ""},
	})

	assert.Equal(t, success("Deleted!"), svc.Delete(context.Background(), 2))
	assert.Len(t, fb.find(http.MethodDelete, "/api/v1/stocks/2"), 1)

	msg := svc.Delete(context.Background(), 9)
	assert.Equal(t, LevelError, msg.Level)
	assert.Equal(t, "Not Found", msg.Text)
}
