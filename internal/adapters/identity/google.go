package identity

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/compentube/compentube-server/internal/domain"
)

// GoogleExchanger wraps Google's authorization-code exchange and ID-token
// verification. Codes are single-use; a stale code fails the exchange cleanly
// and nothing is retried.
type GoogleExchanger struct {
	oauth *oauth2.Config
}

func NewGoogleExchanger(clientID, clientSecret, redirectURL string) (*GoogleExchanger, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("google client id and secret are required")
	}

	return &GoogleExchanger{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
		},
	}, nil
}

// CompleteLogin exchanges the one-time code for tokens and verifies the ID
// token issued with the same exchange. Either both results are returned or
// neither is.
func (g *GoogleExchanger) CompleteLogin(ctx context.Context, code string) (*domain.CredentialBundle, *domain.UserProfile, error) {
	if code == "" {
		return nil, nil, fmt.Errorf("%w: authorization code missing", domain.ErrIdentityExchange)
	}

	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: code exchange: %w", domain.ErrIdentityExchange, err)
	}

	rawID, _ := tok.Extra("id_token").(string)
	if rawID == "" {
		return nil, nil, fmt.Errorf("%w: exchange response carried no id_token", domain.ErrIdentityExchange)
	}

	payload, err := idtoken.Validate(ctx, rawID, g.oauth.ClientID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: id_token verification: %w", domain.ErrIdentityExchange, err)
	}

	profile := profileFromClaims(payload.Claims)
	if profile == nil {
		return nil, nil, fmt.Errorf("%w: id_token payload missing email claim", domain.ErrIdentityExchange)
	}

	scope, _ := tok.Extra("scope").(string)
	bundle := &domain.CredentialBundle{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
		Scope:        scope,
	}

	return bundle, profile, nil
}

// profileFromClaims maps the verified payload into a UserProfile, failing
// closed when the stable identity key is absent.
func profileFromClaims(claims map[string]any) *domain.UserProfile {
	email, _ := claims["email"].(string)
	if email == "" {
		return nil
	}
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	return &domain.UserProfile{
		DisplayName: name,
		Email:       email,
		AvatarURL:   picture,
	}
}

// TokenSource adapts stored session credentials for the outbound Google API
// calls. The token is static: refresh is a fresh-exchange concern, not done
// in-place here.
func TokenSource(creds *domain.CredentialBundle) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		Expiry:       creds.Expiry,
		TokenType:    "Bearer",
	})
}
