// Package azuread valida tokens RS256 emitidos por Azure AD (modo
// Authentication.Mode = AzureAD) usando las claves públicas del tenant.
package azuread

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelter/internal/adapters/auth/jwtbearer"
	"shelter/internal/platform/httpclient"
	"shelter/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("azuread: tenant or jwks url required")
	ErrInvalidToken  = errors.New("azuread: invalid token")
)

const DefaultInstance = "https://login.microsoftonline.com"

type Config struct {
	Instance string // default https://login.microsoftonline.com
	TenantID string
	ClientID string // audiencia esperada; vacío = no se valida
	Issuer   string // opcional
	JwksURL  string // pisa Instance/TenantID si viene
	Timeout  time.Duration
}

// KeysURL arma la URL del JWKS del tenant.
func (c Config) KeysURL() (string, error) {
	if u := strings.TrimSpace(c.JwksURL); u != "" {
		return u, nil
	}
	tenant := strings.TrimSpace(c.TenantID)
	if tenant == "" {
		return "", ErrNotConfigured
	}
	inst := strings.TrimRight(strings.TrimSpace(c.Instance), "/")
	if inst == "" {
		inst = DefaultInstance
	}
	return inst + "/" + tenant + "/discovery/v2.0/keys", nil
}

// Verifier implementa auth.AuthVerifier.
type Verifier struct {
	keys   *KeySet
	parser *jwt.Parser
}

func NewVerifier(cfg Config) (*Verifier, error) {
	url, err := cfg.KeysURL()
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithLeeway(jwtbearer.DefaultLeeway),
		jwt.WithExpirationRequired(),
	}
	if aud := strings.TrimSpace(cfg.ClientID); aud != "" {
		opts = append(opts, jwt.WithAudience(aud))
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}

	return &Verifier{
		keys:   NewKeySet(url, httpclient.New(cfg.Timeout)),
		parser: jwt.NewParser(opts...),
	}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	mc := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(token, mc, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid header")
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, err := jwtbearer.ClaimsFromMap(mc)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
