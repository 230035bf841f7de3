package service

import (
	"context"
	"net/http"
	"testing"

	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRender(t *testing.T) {
	fb := newFakeBackend(t, map[string]reply{
		"GET /api/v1/stocks/": {http.StatusOK, twoStocks},
	})
	svc := NewDashboardService(fb.repository(), fb.cfg, logger.NewNop())

	view := svc.Render(context.Background())

	require.Nil(t, view.Error)
	assert.Equal(t, []Metric{
		{Label: "Total Stocks", Value: "2"},
		{Label: "Sectors", Value: "1"},
		{Label: "Active Stocks", Value: "1"},
	}, view.Metrics)
	require.NotNil(t, view.Table)
	assert.Equal(t, []string{"symbol", "name", "sector", "industry", "exchange", "is_active"}, view.Table.Columns)
	assert.Equal(t, []string{"XOM", "Exxon Mobil", "", "", "", "No"}, view.Table.Rows[1])
}

func TestDashboardRender_OnlyPresentColumns(t *testing.T) {
	fb := newFakeBackend(t, map[string]reply{
		"GET /api/v1/stocks/": {http.StatusOK, `[{"id":1,"symbol":"AAPL","name":"Apple Inc.","is_active":true}]`},
	})
	svc := NewDashboardService(fb.repository(), fb.cfg, logger.NewNop())

	view := svc.Render(context.Background())

	require.NotNil(t, view.Table)
	assert.Equal(t, []string{"symbol", "name", "is_active"}, view.Table.Columns)
	assert.Equal(t, [][]string{{"AAPL", "Apple Inc.", "Yes"}}, view.Table.Rows)
	assert.Equal(t, "0", view.Metrics[1].Value)
}

func TestDashboardRender_Empty(t *testing.T) {
	fb := newFakeBackend(t, map[string]reply{
		"GET /api/v1/stocks/": {http.StatusOK, `[]`},
	})
	svc := NewDashboardService(fb.repository(), fb.cfg, logger.NewNop())

	view := svc.Render(context.Background())

	require.NotNil(t, view.Notice)
	assert.Equal(t, "No stocks in database. Add some stocks from the Stock Management page.", view.Notice.Text)
	assert.Nil(t, view.Table)
	assert.Empty(t, view.Metrics)
}

func TestDashboardRender_BackendDown(t *testing.T) {
	cfg := unreachableBackend(t)
	fb := &fakeBackend{cfg: cfg}
	svc := NewDashboardService(fb.repository(), cfg, logger.NewNop())

	view := svc.Render(context.Background())

	require.NotNil(t, view.Error)
	assert.Equal(t, LevelError, view.Error.Level)
	assert.Equal(t, common.MessageCannotConnect, view.Error.Text)
	require.NotNil(t, view.Hint)
	assert.Equal(t, "Make sure the backend API is running on "+cfg.BaseURL, view.Hint.Text)
	assert.Nil(t, view.Table)
}
