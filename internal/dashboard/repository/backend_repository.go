package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/pkg/common"
)

// BackendRepository exposes one typed call per backend endpoint. Every
// error it returns is an *APIError.
type BackendRepository interface {
	ListStocks(ctx context.Context) (*dto.StockList, error)
	CreateStock(ctx context.Context, req dto.CreateStockRequest) (*dto.Stock, error)
	FetchStock(ctx context.Context, symbol string) (*dto.Stock, error)
	DeleteStock(ctx context.Context, id int64) error
	FetchPrices(ctx context.Context, req dto.FetchPricesRequest) (*dto.FetchPricesResult, error)
	ListPrices(ctx context.Context, stockID int64, query dto.PriceQuery) ([]dto.PriceRecord, error)
	PriceStats(ctx context.Context, stockID int64) (*dto.PriceStats, error)
	Projection(ctx context.Context, stockID int64, query dto.ProjectionQuery) (*dto.Projection, error)
	MovingAverage(ctx context.Context, stockID int64, window int) ([]dto.MovingAverageRow, error)
	Volatility(ctx context.Context, stockID int64, lookbackDays int) (*dto.VolatilityResult, error)
	Health(ctx context.Context) (*HealthStatus, error)
}

type backendRepository struct {
	gateway Gateway
}

// NewBackendRepository creates a BackendRepository on top of the gateway.
func NewBackendRepository(gateway Gateway) BackendRepository {
	return &backendRepository{gateway: gateway}
}

func (r *backendRepository) Health(ctx context.Context) (*HealthStatus, error) {
	return r.gateway.Health(ctx)
}

func (r *backendRepository) ListStocks(ctx context.Context) (*dto.StockList, error) {
	var stocks dto.StockList
	if err := r.call(ctx, Request{Method: http.MethodGet, Endpoint: common.EndpointStocks}, &stocks); err != nil {
		return nil, err
	}
	return &stocks, nil
}

func (r *backendRepository) CreateStock(ctx context.Context, req dto.CreateStockRequest) (*dto.Stock, error) {
	var stock dto.Stock
	if err := r.call(ctx, Request{Method: http.MethodPost, Endpoint: common.EndpointStocks, Body: req}, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *backendRepository) FetchStock(ctx context.Context, symbol string) (*dto.Stock, error) {
	endpoint := fmt.Sprintf(common.EndpointStockFetch, url.PathEscape(symbol))
	var stock dto.Stock
	if err := r.call(ctx, Request{Method: http.MethodPost, Endpoint: endpoint}, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *backendRepository) DeleteStock(ctx context.Context, id int64) error {
	_, err := r.gateway.Call(ctx, Request{Method: http.MethodDelete, Endpoint: fmt.Sprintf(common.EndpointStock, id)})
	return err
}

func (r *backendRepository) FetchPrices(ctx context.Context, req dto.FetchPricesRequest) (*dto.FetchPricesResult, error) {
	var result dto.FetchPricesResult
	if err := r.call(ctx, Request{Method: http.MethodPost, Endpoint: common.EndpointPricesFetch, Body: req}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *backendRepository) ListPrices(ctx context.Context, stockID int64, query dto.PriceQuery) ([]dto.PriceRecord, error) {
	var prices []dto.PriceRecord
	req := Request{Method: http.MethodGet, Endpoint: fmt.Sprintf(common.EndpointPrices, stockID), Query: query.Values()}
	if err := r.call(ctx, req, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

// PriceStats always covers the full stored history: no date filter is sent.
func (r *backendRepository) PriceStats(ctx context.Context, stockID int64) (*dto.PriceStats, error) {
	var stats dto.PriceStats
	if err := r.call(ctx, Request{Method: http.MethodGet, Endpoint: fmt.Sprintf(common.EndpointPriceStats, stockID)}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *backendRepository) Projection(ctx context.Context, stockID int64, query dto.ProjectionQuery) (*dto.Projection, error) {
	var projection dto.Projection
	req := Request{Method: http.MethodGet, Endpoint: fmt.Sprintf(common.EndpointPriceProjection, stockID), Query: query.Values()}
	if err := r.call(ctx, req, &projection); err != nil {
		return nil, err
	}
	return &projection, nil
}

// MovingAverage returns no rows, and no error, when the backend answers
// with something other than a JSON list.
func (r *backendRepository) MovingAverage(ctx context.Context, stockID int64, window int) ([]dto.MovingAverageRow, error) {
	req := Request{
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf(common.EndpointPriceMovingAvg, stockID),
		Query:    url.Values{"window": {strconv.Itoa(window)}},
	}
	res, err := r.gateway.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	if !res.IsList() {
		return nil, nil
	}

	var rows []dto.MovingAverageRow
	if err := decode(res, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *backendRepository) Volatility(ctx context.Context, stockID int64, lookbackDays int) (*dto.VolatilityResult, error) {
	req := Request{
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf(common.EndpointPriceVolatility, stockID),
		Query:    url.Values{"lookback_days": {strconv.Itoa(lookbackDays)}},
	}
	var result dto.VolatilityResult
	if err := r.call(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *backendRepository) call(ctx context.Context, req Request, out interface{}) error {
	res, err := r.gateway.Call(ctx, req)
	if err != nil {
		return err
	}
	return decode(res, out)
}

func decode(res *Result, out interface{}) error {
	if err := res.Decode(out); err != nil {
		return &APIError{Kind: ErrorKindUnexpected, Message: err.Error(), Err: err}
	}
	return nil
}
