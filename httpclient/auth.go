package httpclient

import "net/http"

// AuthType identifies the authentication method.
type AuthType int

const (
	// AuthNone sends no credentials.
	AuthNone AuthType = iota
	// AuthBearer sends "Authorization: Bearer <token>".
	AuthBearer
	// AuthHeader sends the key in a named header.
	AuthHeader
)

// AuthConfig configures request authentication.
type AuthConfig struct {
	Type   AuthType
	Token  string
	Header string
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Type: AuthBearer, Token: token}
}

// HeaderAuth sends token verbatim in the given header.
func HeaderAuth(header, token string) *AuthConfig {
	return &AuthConfig{Type: AuthHeader, Header: header, Token: token}
}

func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthBearer:
		req.Header.Set("Authorization", "Bearer "+a.Token)
	case AuthHeader:
		if a.Header != "" {
			req.Header.Set(a.Header, a.Token)
		}
	}
}
