package httpclient

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
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/restkit/logger"
)

const headerRequestID = "X-Request-ID"

// Client is a configurable HTTP client with bearer auth and TLS support.
// It dispatches exactly one request per Do call and is safe for concurrent
// use; configuration is immutable after New.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	log := cfg.Logger
	if log == nil {
		log = logger.GetGlobalLogger().WithComponent("httpclient")
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    log,
	}, nil
}

// Name returns the client's configured name ("default" if unset).
func (c *Client) Name() string {
	if c.config.Name == "" {
		return "default"
	}
	return c.config.Name
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes a single HTTP request and returns the buffered response.
// For non-2xx responses both the response and a classified *Error are
// returned so callers can still read the body. Transport failures,
// timeouts, and context cancellation return a nil response and an *Error
// whose code distinguishes the cause.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	ctx, span := tracer().Start(ctx, req.Method+" "+c.Name(),
		trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	resp, err := c.executeRequest(ctx, req)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Debug("http request failed", logger.Fields(
			logger.FieldClient, c.Name(),
			logger.FieldMethod, req.Method,
			logger.FieldURL, req.Path,
			logger.FieldStatus, statusCode,
			logger.FieldError, err.Error(),
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
	} else {
		c.log.Trace("http request completed", logger.Fields(
			logger.FieldClient, c.Name(),
			logger.FieldMethod, req.Method,
			logger.FieldURL, req.Path,
			logger.FieldStatus, statusCode,
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
	}

	recordRequest(ctx, c.Name(), req.Method, statusCode, err, time.Since(start))
	return resp, err
}

// executeRequest builds and sends the HTTP request exactly once.
func (c *Client) executeRequest(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(
		attribute.String("http.request.method", httpReq.Method),
		attribute.String("url.full", httpReq.URL.String()),
		attribute.String("client.name", c.Name()),
	)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// classifyTransportError maps a send/read failure to a typed error.
// Context cancellation and deadline expiry take precedence so callers can
// tell a canceled call apart from a network fault.
func classifyTransportError(ctx context.Context, err error) *Error {
	switch {
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		return NewCanceledError(err)
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError(err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		target = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if httpReq.Header.Get(headerRequestID) == "" {
		httpReq.Header.Set(headerRequestID, uuid.NewString())
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Request-level auth overrides client-level. Empty token means no header.
	auth := BearerAuth(c.config.BearerToken)
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	case FormBody:
		form := make(url.Values, len(v))
		for k, val := range v {
			form.Set(k, val)
		}
		return strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", nil
	case *MultipartBody:
		return v.encode()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json; charset=utf-8", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
