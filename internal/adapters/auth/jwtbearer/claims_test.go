package jwtbearer

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsFromMap_ClaimShapes(t *testing.T) {
	m := jwt.MapClaims{
		"sub":   "u1",
		"scope": []any{"Pets.Write", "Inquiries.Read Inquiries.Write"},
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role": "Shelter.Admin",
		"unique_name": "alex@example.org",
	}

	c, err := ClaimsFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "alex@example.org", c.Name)
	assert.Equal(t, []string{"Pets.Write", "Inquiries.Read", "Inquiries.Write"}, c.Scopes)
	assert.Equal(t, []string{"Shelter.Admin"}, c.Roles)
}

func TestClaimsFromMap_ObjectIDFallback(t *testing.T) {
	c, err := ClaimsFromMap(jwt.MapClaims{"oid": "object-1", "roles": []any{"A", 42, " "}})
	require.NoError(t, err)
	assert.Equal(t, "object-1", c.UserID)
	assert.Equal(t, []string{"A"}, c.Roles)
	assert.Empty(t, c.Scopes)
}

func TestClaimsFromMap_MissingSubject(t *testing.T) {
	_, err := ClaimsFromMap(jwt.MapClaims{"scp": "Pets.Write"})
	assert.ErrorIs(t, err, ErrMissingSubject)
}
