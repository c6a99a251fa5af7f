package auth

import "slices"

// Claims representa la información extraída del token.
type Claims struct {
	UserID string // sub
	Name   string

	Scopes []string // valores de scp/scope ya separados por espacio
	Roles  []string
}

func (c Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

func (c Claims) HasAnyRole(roles []string) bool {
	for _, r := range roles {
		if slices.Contains(c.Roles, r) {
			return true
		}
	}
	return false
}
