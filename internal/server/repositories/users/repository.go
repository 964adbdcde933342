// Package users declares the repository contract for user records.
package users

import (
	"context"

	"github.com/aspira-project/aspira-backend/internal/server/models"
)

// Repository defines storage operations on user records.
type Repository interface {
	// Create inserts a new user. Used by the provisioning path only; the
	// authentication flow never mutates users.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUniqueID performs an exact-match lookup by the login identifier.
	// Implementations return common.ErrorNotFound when no user matches.
	GetByUniqueID(ctx context.Context, uniqueID string) (*models.User, error)
}
