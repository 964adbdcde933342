// Package tokens declares the repository contract for bearer tokens.
package tokens

import (
	"context"

	"github.com/aspira-project/aspira-backend/internal/server/models"
)

// Repository defines operations for issuing and resolving bearer tokens.
type Repository interface {
	// GetOrCreate returns the user's existing token or atomically stores
	// value as the new one. The boolean reports whether a row was created.
	// Concurrent callers for the same user all observe the same token value.
	GetOrCreate(ctx context.Context, userID string, value string) (*models.Token, bool, error)

	// FindUser resolves a presented token value back to its owning user.
	// Implementations return common.ErrorNotFound for unknown tokens.
	FindUser(ctx context.Context, value string) (*models.User, error)
}
