package models

import "time"

// Token is an issued bearer credential. Value is opaque random hex; a
// UNIQUE constraint on UserID keeps at most one live token per user. Tokens
// never expire or rotate.
type Token struct {
	Value     string
	UserID    string
	CreatedAt time.Time
}
