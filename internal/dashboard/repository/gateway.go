package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/pkg/common"
	"golang-stock-dashboard/pkg/logger"

	"github.com/PaesslerAG/jsonpath"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrInvalidMethod is wrapped by the error returned for unsupported verbs.
var ErrInvalidMethod = errors.New("invalid method")

// ErrorKind classifies gateway failures.
type ErrorKind string

const (
	// ErrorKindConnectivity means the backend could not be reached at all.
	ErrorKindConnectivity ErrorKind = "connectivity"
	// ErrorKindApplication means the backend answered with an error status.
	ErrorKindApplication ErrorKind = "application"
	// ErrorKindUnexpected covers everything else: timeouts, bad JSON, ...
	ErrorKindUnexpected ErrorKind = "unexpected"
)

// APIError is the error value returned by every gateway call. Message is
// meant to be shown to the user as is.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// Request describes a single backend call. Query is only used by GET and
// Body only by POST and PUT; DELETE sends neither.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values
	Body     interface{}
}

// Result is a successful gateway response. Empty is set for 204 replies,
// which carry no body.
type Result struct {
	Body  json.RawMessage
	Empty bool
}

// Decode unmarshals the body into v. Empty results leave v untouched.
func (r *Result) Decode(v interface{}) error {
	if r.Empty || len(r.Body) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, v)
}

// IsList reports whether the body is a JSON array.
func (r *Result) IsList() bool {
	b := bytes.TrimSpace(r.Body)
	return len(b) > 0 && b[0] == '['
}

// HealthStatus is the outcome of a liveness probe that reached the backend.
type HealthStatus struct {
	Up         bool
	StatusCode int
}

// Gateway is the only component issuing HTTP calls to the backend.
type Gateway interface {
	Call(ctx context.Context, req Request) (*Result, error)
	Health(ctx context.Context) (*HealthStatus, error)
}

type gateway struct {
	cfg            config.Backend
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewGateway creates a Gateway for the configured backend.
func NewGateway(cfg config.Backend, log *logger.Logger) Gateway {
	limit := rate.Inf
	if cfg.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.MaxRequestPerMinute))
	}
	return &gateway{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		requestLimiter: rate.NewLimiter(limit, 1),
	}
}

func (g *gateway) Call(ctx context.Context, req Request) (*Result, error) {
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("endpoint", req.Endpoint),
	}

	httpReq, err := g.newRequest(ctx, req)
	if err != nil {
		return nil, g.fail(ctx, err, fields)
	}

	if err := g.requestLimiter.Wait(ctx); err != nil {
		return nil, g.fail(ctx, &APIError{Kind: ErrorKindUnexpected, Message: err.Error(), Err: err}, fields)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, g.fail(ctx, classifyTransportError(err), fields)
	}
	defer resp.Body.Close()

	fields = append(fields, zap.Int("status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, g.fail(ctx, &APIError{Kind: ErrorKindUnexpected, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}, fields)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if !json.Valid(body) {
			err := fmt.Errorf("invalid JSON in response from %s", req.Endpoint)
			return nil, g.fail(ctx, &APIError{Kind: ErrorKindUnexpected, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}, fields)
		}
		g.log.DebugContext(ctx, "Backend call succeeded", fields...)
		return &Result{Body: body}, nil
	case http.StatusNoContent:
		g.log.DebugContext(ctx, "Backend call succeeded", fields...)
		return &Result{Empty: true}, nil
	default:
		return nil, g.fail(ctx, &APIError{
			Kind:       ErrorKindApplication,
			StatusCode: resp.StatusCode,
			Message:    errorDetail(body),
		}, fields)
	}
}

func (g *gateway) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.HealthURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.WarnContext(ctx, "Backend health probe failed", logger.ErrorField(err))
		return nil, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return &HealthStatus{Up: resp.StatusCode == http.StatusOK, StatusCode: resp.StatusCode}, nil
}

func (g *gateway) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := g.cfg.APIBaseURL() + req.Endpoint

	var body io.Reader
	switch req.Method {
	case http.MethodGet:
		if len(req.Query) > 0 {
			target += "?" + req.Query.Encode()
		}
	case http.MethodPost, http.MethodPut:
		if req.Body != nil {
			payload, err := json.Marshal(req.Body)
			if err != nil {
				return nil, &APIError{Kind: ErrorKindUnexpected, Message: err.Error(), Err: err}
			}
			body = bytes.NewReader(payload)
		}
	case http.MethodDelete:
	default:
		return nil, &APIError{
			Kind:    ErrorKindUnexpected,
			Message: common.MessageInvalidMethod,
			Err:     fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method),
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, &APIError{Kind: ErrorKindUnexpected, Message: err.Error(), Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}

func (g *gateway) fail(ctx context.Context, err error, fields []zap.Field) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("kind", string(apiErr.Kind)))
	}
	fields = append(fields, zap.Error(err))
	g.log.ErrorContext(ctx, "Backend call failed", fields...)
	return err
}

// classifyTransportError separates "backend not reachable" from other
// transport failures such as response timeouts.
func classifyTransportError(err error) *APIError {
	if isConnectivityError(err) {
		return &APIError{Kind: ErrorKindConnectivity, Message: common.MessageCannotConnect, Err: err}
	}
	return &APIError{Kind: ErrorKindUnexpected, Message: err.Error(), Err: err}
}

func isConnectivityError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}

// errorDetail extracts the backend's "detail" message from an error body.
func errorDetail(body []byte) string {
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return common.MessageAPIError
	}

	detail, err := jsonpath.Get("$.detail", doc)
	if err != nil || detail == nil {
		return common.MessageAPIError
	}

	switch d := detail.(type) {
	case string:
		if d == "" {
			return common.MessageAPIError
		}
		return d
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return common.MessageAPIError
		}
		return string(b)
	}
}
