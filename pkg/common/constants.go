package common

const (
	// Backend endpoints, relative to the versioned API prefix.
	EndpointStocks           = "/stocks/"
	EndpointStockFetch       = "/stocks/fetch/%s"
	EndpointStock            = "/stocks/%d"
	EndpointPricesFetch      = "/prices/fetch"
	EndpointPrices           = "/prices/%d"
	EndpointPriceStats       = "/prices/%d/stats"
	EndpointPriceProjection  = "/prices/%d/projection"
	EndpointPriceMovingAvg   = "/prices/%d/moving-average"
	EndpointPriceVolatility  = "/prices/%d/volatility"
	DefaultBackendAPIPrefix  = "/api/v1"
	DefaultBackendHealthPath = "/health"

	MessageCannotConnect = "Cannot connect to backend API. Make sure the server is running."
	MessageAPIError      = "API Error"
	MessageInvalidMethod = "Invalid method"
)
