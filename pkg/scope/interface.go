package scope

import (
	"scanner-srv/internal/model"
)

// TokenVerifier verifies a bearer token and returns its payload.
type TokenVerifier interface {
	Verify(token string) (Payload, error)
}

// Manager resolves request scopes from tokens or scope headers.
type Manager interface {
	Verify(token string) (model.Scope, error)
	VerifyScope(scopeHeader string) (model.Scope, error)
}

// New creates a scope Manager backed by the given token verifier.
func New(verifier TokenVerifier) Manager {
	return implManager{verifier: verifier}
}

type implManager struct {
	verifier TokenVerifier
}
