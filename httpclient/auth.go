package httpclient

import "net/http"

// AuthConfig configures bearer token authentication. Anything beyond a
// single bearer token (signing, OAuth flows) is out of scope for this
// client; wrap the request at a higher layer if you need it.
type AuthConfig struct {
	// Token is the bearer token. Empty means no Authorization header.
	Token string
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Token: token}
}

// apply attaches the Authorization header. A nil config or empty token
// leaves the request untouched; the header is never sent with a
// placeholder value.
func (a *AuthConfig) apply(req *http.Request) {
	if a == nil || a.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
}
