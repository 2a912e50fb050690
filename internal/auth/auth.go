// Package auth resolves request credentials to an authenticated principal.
//
// The gateway deliberately never returns an error: any failure along the way
// (absent credential, malformed header, unreachable identity provider,
// rejected token) yields a nil principal, so call sites only ever distinguish
// "authenticated" from "not authenticated".
package auth

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Principal is an authenticated caller.
type Principal struct {
	// ID is the subject identifier assigned by the identity provider.
	ID string
	// Email is the verified address, when the provider exposes one.
	Email string
	// Claims carries the raw provider claims for auditing.
	Claims map[string]any
}

// Introspector resolves an opaque credential to a principal.
type Introspector interface {
	Introspect(ctx context.Context, token string) (*Principal, error)
}

// Gateway extracts a credential from a request and introspects it.
type Gateway struct {
	introspector Introspector
	cookieName   string
}

// NewGateway creates a gateway using the given introspector. cookieName is
// the session cookie consulted when no Authorization header is present.
func NewGateway(introspector Introspector, cookieName string) *Gateway {
	return &Gateway{
		introspector: introspector,
		cookieName:   cookieName,
	}
}

// CookieName returns the session cookie the gateway falls back to.
func (g *Gateway) CookieName() string {
	return g.cookieName
}

// Authenticate resolves the caller from the Authorization header, falling
// back to the session cookie value. It returns nil when no valid credential
// is present.
func (g *Gateway) Authenticate(ctx context.Context, authorizationHeader, cookieToken string) *Principal {
	token := bearerToken(authorizationHeader)
	if token == "" {
		token = strings.TrimSpace(cookieToken)
	}

	if token == "" {
		return nil
	}

	principal, err := g.introspector.Introspect(ctx, token)
	if err != nil {
		log.Debug().Err(err).Msg("token introspection failed")
		return nil
	}

	if principal == nil || principal.ID == "" {
		return nil
	}

	return principal
}

// bearerToken extracts the credential from a Bearer authorization header.
// The scheme is matched case-insensitively.
func bearerToken(header string) string {
	scheme, credential, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(credential)
}
