package scope

// Payload carries the verified identity claims of a request.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`

	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Id        string `json:"jti,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}
