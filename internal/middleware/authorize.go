package middleware

import (
	"net/http"
	"strings"

	"shelter/internal/authz"
	"shelter/internal/platform/logger"
	"shelter/internal/platform/problem"
)

// Authorizer corta el request antes del handler si la política no se cumple:
// sin claims => 401, claims que no cumplen => 403.
type Authorizer struct {
	policies *authz.Evaluator
}

func NewAuthorizer(policies *authz.Evaluator) *Authorizer {
	return &Authorizer{policies: policies}
}

// Require devuelve un middleware para la política name. name vacío = abierto.
func (a *Authorizer) Require(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if strings.TrimSpace(name) == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r.Context())
			if !ok || strings.TrimSpace(claims.UserID) == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				problem.Error(w, r, http.StatusUnauthorized, "authentication required")
				return
			}

			allowed, err := a.policies.Evaluate(name, claims)
			if err != nil {
				logger.FromContext(r.Context()).Error("policy evaluation failed", map[string]any{
					"policy": name,
					"err":    err.Error(),
				})
				problem.Error(w, r, http.StatusInternalServerError, "internal error")
				return
			}
			if !allowed {
				logger.FromContext(r.Context()).Info("access denied", map[string]any{
					"policy":  name,
					"user_id": claims.UserID,
				})
				problem.Error(w, r, http.StatusForbidden, "access denied by policy "+name)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
