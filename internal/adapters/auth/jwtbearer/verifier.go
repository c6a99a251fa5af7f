// Package jwtbearer valida tokens HS256 firmados con una clave simétrica
// compartida (modo Authentication.Mode = JwtBearer).
package jwtbearer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelter/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSigningKey = errors.New("jwt bearer: signing key required")
	ErrInvalidToken = errors.New("jwt bearer: invalid token")
)

const DefaultLeeway = 30 * time.Second

type Config struct {
	// SigningKey es la clave en base64 (como se guarda en config).
	SigningKey string
	Issuer     string // opcional; vacío = no se valida
	Audience   string // opcional; vacío = no se valida
	Leeway     time.Duration
}

// DecodeKey acepta base64 estándar o URL-safe, con o sin padding.
func DecodeKey(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrNoSigningKey
	}
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil && len(b) > 0 {
			return b, nil
		}
	}
	return nil, fmt.Errorf("jwt bearer: signing key is not valid base64")
}

// Verifier implementa auth.AuthVerifier.
type Verifier struct {
	key    []byte
	parser *jwt.Parser
}

func NewVerifier(cfg Config) (*Verifier, error) {
	key, err := DecodeKey(cfg.SigningKey)
	if err != nil {
		return nil, err
	}

	leeway := cfg.Leeway
	if leeway <= 0 {
		leeway = DefaultLeeway
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(leeway),
		jwt.WithExpirationRequired(),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}
	if aud := strings.TrimSpace(cfg.Audience); aud != "" {
		opts = append(opts, jwt.WithAudience(aud))
	}

	return &Verifier{key: key, parser: jwt.NewParser(opts...)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	mc := jwt.MapClaims{}
	if _, err := v.parser.ParseWithClaims(token, mc, func(*jwt.Token) (any, error) {
		return v.key, nil
	}); err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, err := ClaimsFromMap(mc)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
