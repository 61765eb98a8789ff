package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/kbukum/restkit/httpclient"
	"github.com/kbukum/restkit/query"
	"github.com/kbukum/restkit/registry"
)

// Client resolves logical client names through a registry and executes
// typed operations against the pooled transports. Safe for concurrent use.
type Client struct {
	reg *registry.Registry
}

// New creates a REST facade over the given registry.
func New(reg *registry.Registry) *Client {
	return &Client{reg: reg}
}

// Registry returns the underlying registry.
func (c *Client) Registry() *registry.Registry {
	return c.reg
}

// RequestOption configures a single request.
type RequestOption func(*httpclient.Request)

// WithToken overrides the client-level bearer token for this request.
// An empty token suppresses the Authorization header entirely.
func WithToken(token string) RequestOption {
	return func(r *httpclient.Request) {
		r.Auth = httpclient.BearerAuth(token)
	}
}

// WithHeader adds a header to the request.
func WithHeader(key, value string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithQueryParam adds a query parameter to the request.
func WithQueryParam(key, value string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Query == nil {
			r.Query = make(map[string]string)
		}
		r.Query[key] = value
	}
}

// Get performs a GET request and interprets the response as Outcome[S, E].
func Get[S, E any](ctx context.Context, c *Client, path, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	return Exchange[S, E](ctx, c, clientName, httpclient.Request{
		Method: http.MethodGet,
		Path:   path,
	}, opts...)
}

// GetQuery projects the model's fields onto the URL as query parameters
// (see package query) and performs a GET request.
func GetQuery[S, E any](ctx context.Context, c *Client, path string, model any, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	path, err := query.Append(path, model)
	if err != nil {
		return nil, httpclient.NewValidationError(err.Error())
	}
	return Get[S, E](ctx, c, path, clientName, opts...)
}

// GetBytes performs a GET request and returns the raw body. A non-2xx
// status is an error, raised only after the body has been read; the
// returned *httpclient.Error carries the status and body.
func GetBytes(ctx context.Context, c *Client, path, clientName string, opts ...RequestOption) ([]byte, error) {
	hc, err := c.reg.Client(clientName)
	if err != nil {
		return nil, err
	}

	req := httpclient.Request{Method: http.MethodGet, Path: path}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := hc.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// PostJSON performs a POST request with a JSON body.
func PostJSON[S, E any](ctx context.Context, c *Client, path string, body any, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	return Exchange[S, E](ctx, c, clientName, httpclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	}, opts...)
}

// PutJSON performs a PUT request with a JSON body.
func PutJSON[S, E any](ctx context.Context, c *Client, path string, body any, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	return Exchange[S, E](ctx, c, clientName, httpclient.Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	}, opts...)
}

// PatchJSON performs a PATCH request with a JSON body.
func PatchJSON[S, E any](ctx context.Context, c *Client, path string, body any, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	return Exchange[S, E](ctx, c, clientName, httpclient.Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	}, opts...)
}

// PostFiles uploads files as multipart/form-data: one "path" text field
// carrying uploadPath (possibly empty) and one "files" part per file,
// preserving filename and declared content type.
func PostFiles[S, E any](ctx context.Context, c *Client, path string, files []httpclient.FileField, uploadPath, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	return Exchange[S, E](ctx, c, clientName, httpclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   httpclient.FilesBody(uploadPath, files),
	}, opts...)
}

// PostFormData posts a caller-assembled multipart body unmodified.
func PostFormData[S, E any](ctx context.Context, c *Client, path string, mp *httpclient.MultipartBody, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	return Exchange[S, E](ctx, c, clientName, httpclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   mp,
	}, opts...)
}

// PostFormURLEncoded posts the form map as application/x-www-form-urlencoded.
func PostFormURLEncoded[S, E any](ctx context.Context, c *Client, path string, form map[string]string, clientName string, opts ...RequestOption) (*Outcome[S, E], error) {
	return Exchange[S, E](ctx, c, clientName, httpclient.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   httpclient.FormBody(form),
	}, opts...)
}

// Delete performs a DELETE request and reports whether the status was 2xx.
// The response body is never decoded. Transport failures and cancellation
// still return an error.
func Delete(ctx context.Context, c *Client, path, clientName string, opts ...RequestOption) (bool, error) {
	hc, err := c.reg.Client(clientName)
	if err != nil {
		return false, err
	}

	req := httpclient.Request{Method: http.MethodDelete, Path: path}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := hc.Do(ctx, req)
	if resp != nil {
		return resp.IsSuccess(), nil
	}
	return false, err
}

// Exchange executes one request and interprets the response: 2xx decodes
// the body into S, any other status decodes it into E and returns a
// failure-variant Outcome as a normal result. Transport failures,
// cancellation, and undecodable bodies are returned as errors.
func Exchange[S, E any](ctx context.Context, c *Client, clientName string, req httpclient.Request, opts ...RequestOption) (*Outcome[S, E], error) {
	hc, err := c.reg.Client(clientName)
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(&req)
	}

	resp, err := hc.Do(ctx, req)
	if err != nil {
		var he *httpclient.Error
		if resp == nil || !errors.As(err, &he) || he.StatusCode == 0 {
			// No response was obtained: transport, timeout, or cancellation.
			return nil, err
		}

		fault, decErr := decodeJSON[E](resp.Body)
		if decErr != nil {
			return nil, decErr
		}
		return &Outcome[S, E]{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Fault:      fault,
		}, nil
	}

	value, decErr := decodeJSON[S](resp.Body)
	if decErr != nil {
		return nil, decErr
	}
	return &Outcome[S, E]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		OK:         true,
		Value:      value,
	}, nil
}
