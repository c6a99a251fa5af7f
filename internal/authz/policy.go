// Package authz evalúa políticas nombradas (scope + roles) sobre los claims
// del request. Las políticas se cargan una vez al arrancar y no cambian.
package authz

import (
	"errors"
	"fmt"
	"strings"

	"shelter/internal/ports/auth"
)

var (
	ErrUnknownPolicy = errors.New("unknown policy")
	ErrInvalidPolicy = errors.New("invalid policy")
)

// Policy exige que el token traiga Claim entre sus scopes Y al menos uno de Roles.
type Policy struct {
	Name  string   `yaml:"name"`
	Claim string   `yaml:"claim"`
	Roles []string `yaml:"roles"`
}

func (p Policy) Allows(c auth.Claims) bool {
	return c.HasScope(p.Claim) && c.HasAnyRole(p.Roles)
}

type Evaluator struct {
	byName map[string]Policy
}

func NewEvaluator(policies []Policy) (*Evaluator, error) {
	byName := make(map[string]Policy, len(policies))
	for _, p := range policies {
		p.Name = strings.TrimSpace(p.Name)
		p.Claim = strings.TrimSpace(p.Claim)
		if p.Name == "" || p.Claim == "" {
			return nil, fmt.Errorf("%w: name and claim are required", ErrInvalidPolicy)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicated policy %q", ErrInvalidPolicy, p.Name)
		}
		byName[p.Name] = p
	}
	return &Evaluator{byName: byName}, nil
}

func (e *Evaluator) Policy(name string) (Policy, error) {
	p, ok := e.byName[name]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %s", ErrUnknownPolicy, name)
	}
	return p, nil
}

// Evaluate devuelve (false, ErrUnknownPolicy) si la política no existe.
func (e *Evaluator) Evaluate(name string, c auth.Claims) (bool, error) {
	p, err := e.Policy(name)
	if err != nil {
		return false, err
	}
	return p.Allows(c), nil
}
