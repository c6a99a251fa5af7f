package middleware

import (
	"context"
	"net/http"
	"strings"

	"shelter/internal/platform/logger"
	"shelter/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// Headers que acepta el modo dev (sin verifier).
const (
	DebugUserHeader   = "X-Debug-User-ID"
	DebugScopesHeader = "X-Debug-Scopes"
	DebugRolesHeader  = "X-Debug-Roles"
)

// AuthContext:
// - Si verifier != nil y viene Bearer token => intenta Verify() y setea claims.
// - Si verifier == nil => modo dev: si viene X-Debug-User-ID => setea claims
//   con los scopes/roles de X-Debug-Scopes / X-Debug-Roles (separados por espacio o coma).
// - Si no hay claims, el request sigue igual; RequirePolicy decide 401/403.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get(DebugUserHeader)); uid != "" {
					claims := auth.Claims{
						UserID: uid,
						Name:   uid,
						Scopes: splitList(r.Header.Get(DebugScopesHeader)),
						Roles:  splitList(r.Header.Get(DebugRolesHeader)),
					}
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos aquí: un token inválido equivale a anónimo.
				logger.FromContext(r.Context()).Debug("token rejected", map[string]any{"err": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
}
