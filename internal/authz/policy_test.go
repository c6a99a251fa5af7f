package authz

import (
	"testing"

	"shelter/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicies() []Policy {
	return []Policy{
		{Name: "Pets.Write", Claim: "Pets.Write", Roles: []string{"Shelter.Staff", "Shelter.Admin"}},
		{Name: "Inquiries.Write", Claim: "Inquiries.Write", Roles: []string{"Shelter.Admin"}},
	}
}

func TestPolicy_Allows(t *testing.T) {
	p := testPolicies()[0]

	cases := []struct {
		name   string
		claims auth.Claims
		want   bool
	}{
		{"scope and role", auth.Claims{UserID: "u", Scopes: []string{"Pets.Write"}, Roles: []string{"Shelter.Staff"}}, true},
		{"scope and second role", auth.Claims{UserID: "u", Scopes: []string{"openid", "Pets.Write"}, Roles: []string{"Other", "Shelter.Admin"}}, true},
		{"scope without role", auth.Claims{UserID: "u", Scopes: []string{"Pets.Write"}}, false},
		{"role without scope", auth.Claims{UserID: "u", Roles: []string{"Shelter.Admin"}}, false},
		{"scope is case sensitive", auth.Claims{UserID: "u", Scopes: []string{"pets.write"}, Roles: []string{"Shelter.Admin"}}, false},
		{"empty claims", auth.Claims{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Allows(tc.claims))
		})
	}
}

func TestPolicy_NoRolesNeverAllows(t *testing.T) {
	p := Policy{Name: "X", Claim: "X"}
	assert.False(t, p.Allows(auth.Claims{UserID: "u", Scopes: []string{"X"}, Roles: []string{"Any"}}))
}

func TestNewEvaluator_Invalid(t *testing.T) {
	_, err := NewEvaluator([]Policy{{Name: "", Claim: "x"}})
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = NewEvaluator([]Policy{{Name: "x", Claim: "  "}})
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = NewEvaluator([]Policy{{Name: "x", Claim: "x"}, {Name: " x ", Claim: "y"}})
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestEvaluator_Evaluate(t *testing.T) {
	e, err := NewEvaluator(testPolicies())
	require.NoError(t, err)

	staff := auth.Claims{UserID: "u", Scopes: []string{"Pets.Write", "Inquiries.Write"}, Roles: []string{"Shelter.Staff"}}

	ok, err := e.Evaluate("Pets.Write", staff)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Evaluate("Inquiries.Write", staff)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.Evaluate("Nope", staff)
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.False(t, ok)
}
