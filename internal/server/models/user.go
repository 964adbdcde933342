// Package models holds the persistent entities of the Aspira backend.
package models

import (
	"time"

	"github.com/aspira-project/aspira-backend/internal/timex"
)

// User is one authenticable principal. UniqueID is the 7-character
// alphanumeric login identifier (AAAA-000 pattern); the date of birth acts
// as the shared secret. IsActive is carried in the schema but is not
// consulted during authentication.
type User struct {
	ID          string
	UniqueID    string
	DateOfBirth timex.Date
	IsActive    bool
	CreatedAt   time.Time
}
