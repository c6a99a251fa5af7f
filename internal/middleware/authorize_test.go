package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shelter/internal/authz"
	"shelter/internal/platform/problem"
	"shelter/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthorizer(t *testing.T) *Authorizer {
	t.Helper()
	e, err := authz.NewEvaluator([]authz.Policy{
		{Name: "Pets.Write", Claim: "Pets.Write", Roles: []string{"Shelter.Staff"}},
	})
	require.NoError(t, err)
	return NewAuthorizer(e)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveWith(h http.Handler, claims *auth.Claims) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pets", nil)
	if claims != nil {
		req = req.WithContext(WithClaims(req.Context(), *claims))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthorizer_Require(t *testing.T) {
	a := newTestAuthorizer(t)
	h := a.Require("Pets.Write")(okHandler())

	t.Run("anonymous", func(t *testing.T) {
		rec := serveWith(h, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, problem.ContentType, rec.Header().Get("Content-Type"))
	})

	t.Run("claims without user", func(t *testing.T) {
		rec := serveWith(h, &auth.Claims{Scopes: []string{"Pets.Write"}, Roles: []string{"Shelter.Staff"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		rec := serveWith(h, &auth.Claims{UserID: "u", Scopes: []string{"Pets.Write"}})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, problem.ContentType, rec.Header().Get("Content-Type"))
	})

	t.Run("missing scope", func(t *testing.T) {
		rec := serveWith(h, &auth.Claims{UserID: "u", Roles: []string{"Shelter.Staff"}})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("allowed", func(t *testing.T) {
		rec := serveWith(h, &auth.Claims{UserID: "u", Scopes: []string{"Pets.Write"}, Roles: []string{"Shelter.Staff"}})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthorizer_EmptyPolicyIsOpen(t *testing.T) {
	a := newTestAuthorizer(t)
	rec := serveWith(a.Require("")(okHandler()), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorizer_UnknownPolicy(t *testing.T) {
	a := newTestAuthorizer(t)
	rec := serveWith(a.Require("Nope")(okHandler()), &auth.Claims{UserID: "u"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
