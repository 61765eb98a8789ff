package rest

import (
	"encoding/json"
	"reflect"

	"github.com/kbukum/restkit/httpclient"
)

// Outcome is the discriminated result of interpreting one HTTP response.
// The HTTP status class selects the variant: 2xx decodes the body into S,
// anything else decodes it into E. Exactly one of Value and Fault is
// populated, indicated by OK.
type Outcome[S, E any] struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// OK is true when the status code is 2xx.
	OK bool
	// Value is the decoded success payload (OK=true).
	Value S
	// Fault is the decoded error payload (OK=false).
	Fault E
}

// decodeJSON unmarshals a response body into T. An empty body yields the
// zero value of T. Decode failures carry the target type name and the raw
// body so they are diagnosable without replaying the request.
func decodeJSON[T any](body []byte) (T, error) {
	var v T
	if len(body) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return v, httpclient.NewDecodeError(typeName[T](), body, err)
	}
	return v, nil
}

// typeName returns the display name of T, pointer types included.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
