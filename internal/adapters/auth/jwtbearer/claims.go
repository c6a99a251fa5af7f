package jwtbearer

import (
	"errors"
	"strings"

	"shelter/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSubject = errors.New("token missing subject")

// Nombres de claim aceptados. Los URIs largos son los que emite Azure AD /
// WS-Federation; los cortos, los de un JWT "normal".
var (
	ScopeClaims = []string{"scp", "scope", "http://schemas.microsoft.com/identity/claims/scope"}
	RoleClaims  = []string{"roles", "role", "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"}
	NameClaims  = []string{"name", "unique_name", "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"}
)

// ClaimsFromMap traduce un jwt.MapClaims ya validado a auth.Claims.
// Scopes pueden venir como string separado por espacios o como array.
func ClaimsFromMap(m jwt.MapClaims) (auth.Claims, error) {
	sub, _ := m.GetSubject()
	sub = strings.TrimSpace(sub)
	if sub == "" {
		if oid, ok := m["oid"].(string); ok {
			sub = strings.TrimSpace(oid)
		}
	}
	if sub == "" {
		return auth.Claims{}, ErrMissingSubject
	}

	c := auth.Claims{UserID: sub}

	for _, k := range NameClaims {
		if v, ok := m[k].(string); ok && strings.TrimSpace(v) != "" {
			c.Name = strings.TrimSpace(v)
			break
		}
	}
	for _, k := range ScopeClaims {
		for _, v := range stringValues(m[k]) {
			c.Scopes = append(c.Scopes, strings.Fields(v)...)
		}
	}
	for _, k := range RoleClaims {
		for _, v := range stringValues(m[k]) {
			if v = strings.TrimSpace(v); v != "" {
				c.Roles = append(c.Roles, v)
			}
		}
	}

	return c, nil
}

func stringValues(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, x := range t {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
