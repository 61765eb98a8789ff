// Package rest is a typed JSON facade over the httpclient and registry
// packages. Operations address a pooled transport by logical client name
// and decode the response into a typed Outcome: a 2xx body decodes into the
// success type, everything else into the fault type. A non-2xx status with
// a decodable body is a normal result, not an error.
//
//	reg, _ := registry.LoadFile(registry.LoaderConfig{ConfigFile: "clients.yml"})
//	c := rest.New(reg)
//
//	out, err := rest.Get[User, APIError](ctx, c, "/users/123", "accounts")
//	if err != nil {
//	    // transport failure, cancellation, or undecodable body
//	}
//	if !out.OK {
//	    // typed fault payload in out.Fault, status in out.StatusCode
//	}
//
// Every operation issues exactly one request; retries belong to the caller.
package rest
