package model

import "time"

// Setting holds per-user scanning configuration. The Facebook access
// token is stored encrypted and decrypted on read.
type Setting struct {
	ID     string
	UserID string

	FacebookAccessToken string
	AIPromptTemplate    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
