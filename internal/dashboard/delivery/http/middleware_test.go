package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return &logger.Logger{Logger: zap.New(core)}, logs
}

func TestRequestLogger_CarriesRequestID(t *testing.T) {
	log, logs := observedLogger()
	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.GET("/ping", func(c echo.Context) error {
		assert.Equal(t, "rid-42", logger.RequestID(c.Request().Context()))
		return c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-42")
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "rid-42", fields["request_id"])
	assert.Equal(t, "/ping", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestDispatch_RenderFailureIsLoggedWithRequestID(t *testing.T) {
	log, logs := observedLogger()
	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	// No renderer registered: every page render fails.
	newTestHandler(t, map[string]backendReply{}, log).RegisterRoutes(e.Group(""))

	req := httptest.NewRequest(http.MethodGet, "/?page=Settings", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-7")
	rec := serve(e, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	failed := logs.FilterMessage("Failed to render page").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "rid-7", failed[0].ContextMap()["request_id"])
	assert.Equal(t, "Settings", failed[0].ContextMap()["page"])

	request := logs.FilterMessage("Request failed").All()
	require.Len(t, request, 1)
	assert.Equal(t, "rid-7", request[0].ContextMap()["request_id"])
}
