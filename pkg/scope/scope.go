package scope

import (
	"encoding/base64"
	"encoding/json"

	"scanner-srv/internal/model"
)

// NewScope creates a new scope.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// CreateScopeHeader encodes a scope as a Base64 JSON header value.
func CreateScopeHeader(scope model.Scope) (string, error) {
	jsonData, err := json.Marshal(scope)
	if err != nil {
		return "", err
	}

	base64Data := base64.StdEncoding.EncodeToString(jsonData)
	return base64Data, nil
}

// ParseScopeHeader decodes a Base64 JSON scope header value.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var scope model.Scope
	err = json.Unmarshal(jsonData, &scope)
	if err != nil {
		return model.Scope{}, err
	}

	return scope, nil
}

func (m implManager) Verify(token string) (model.Scope, error) {
	payload, err := m.verifier.Verify(token)
	if err != nil {
		return model.Scope{}, err
	}

	return NewScope(payload), nil
}

func (m implManager) VerifyScope(scopeHeader string) (model.Scope, error) {
	scope, err := ParseScopeHeader(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	return scope, nil
}
