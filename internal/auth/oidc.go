package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// UserInfoIntrospector validates access tokens against the identity
// provider's UserInfo endpoint. The provider is resolved lazily from the
// issuer's discovery document so the service can start while the provider
// is unreachable.
type UserInfoIntrospector struct {
	issuerURL string

	mu       sync.Mutex
	provider *oidc.Provider
}

// NewUserInfoIntrospector creates an introspector for the given issuer.
func NewUserInfoIntrospector(issuerURL string) *UserInfoIntrospector {
	return &UserInfoIntrospector{issuerURL: issuerURL}
}

func (i *UserInfoIntrospector) resolveProvider(ctx context.Context) (*oidc.Provider, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.provider != nil {
		return i.provider, nil
	}

	provider, err := oidc.NewProvider(ctx, i.issuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity provider: %w", err)
	}

	i.provider = provider

	return provider, nil
}

// Introspect resolves the token holder through the UserInfo endpoint.
func (i *UserInfoIntrospector) Introspect(ctx context.Context, token string) (*Principal, error) {
	provider, err := i.resolveProvider(ctx)
	if err != nil {
		return nil, err
	}

	userInfo, err := provider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	if userInfo.Subject == "" {
		return nil, ErrEmptySubject
	}

	var claims map[string]any
	if err := userInfo.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse user info claims: %w", err)
	}

	return &Principal{
		ID:     userInfo.Subject,
		Email:  userInfo.Email,
		Claims: claims,
	}, nil
}
