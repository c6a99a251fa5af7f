package auth

import "context"

//go:generate mockgen -source=verifier.go -destination=mocks/verifier_mock.go -package=mocks

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
