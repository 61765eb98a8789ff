// Package httpclient provides a configurable HTTP client with bearer
// authentication, TLS, typed error classification, and support for JSON,
// multipart, and form-urlencoded request bodies.
//
// The base Client handles protocol concerns; higher layers add convenience:
//
//   - registry: named-client pooling and config loading
//   - rest: typed request/response facade with generic outcomes
//   - query: struct-to-query-string projection
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL:     "https://api.example.com",
//	    Timeout:     30 * time.Second,
//	    BearerToken: "my-token",
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/123",
//	})
//
// Every call dispatches exactly one request. Retry, backoff, and circuit
// breaking are left to the caller.
package httpclient
