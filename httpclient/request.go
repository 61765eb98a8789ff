package httpclient

// Request describes one outbound HTTP request. A Request is assembled per
// call and discarded after dispatch; the client never mutates it after the
// request is on the wire.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Can be a full URL if BaseURL is empty.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Query are URL query parameters merged into the target URL.
	Query map[string]string
	// Body is the request body. Accepts nil (no body), io.Reader, []byte,
	// string, FormBody, *MultipartBody, or any value that will be
	// JSON-encoded.
	Body any
	// Auth overrides the client-level bearer token for this request.
	Auth *AuthConfig
}

// FormBody is an application/x-www-form-urlencoded request body. Keys and
// values are passed through unmodified and encoded once at dispatch.
type FormBody map[string]string

// Response is the buffered result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
