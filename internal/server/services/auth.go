// Package services contains server-side business logic. This file implements
// AuthService, which decides accept/reject for login attempts and issues the
// opaque bearer tokens used on subsequent requests.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aspira-project/aspira-backend/internal/common"
	"github.com/aspira-project/aspira-backend/internal/server/models"
	"github.com/aspira-project/aspira-backend/internal/server/repositories/repomanager"
	"github.com/aspira-project/aspira-backend/internal/timex"
	"github.com/google/uuid"
)

// tokenByteLen is the number of random bytes behind a token value; the hex
// encoding doubles it to a 40-character string.
const tokenByteLen = 20

// uniqueIDMaxLen is the fixed identifier length (AAAA-000 pattern).
const uniqueIDMaxLen = 7

// AuthService provides authentication-related operations:
//   - Authenticate: verify credentials and obtain the user's token
//   - ResolveToken: map a presented bearer token back to its owner
//   - CreateUser: the operator-facing provisioning path
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewAuthService constructs an AuthService over the given database handle
// and repository manager.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager) *AuthService {
	return &AuthService{db: db, repomanager: m}
}

// Authenticate checks the claimed date of birth against the stored one for
// the user named by uniqueID and, on success, returns the user's token,
// creating it on first login. An unknown identifier and a wrong date both
// yield common.ErrorUnauthorized so callers cannot probe which identifiers
// exist. The IsActive flag is not consulted here.
func (s *AuthService) Authenticate(ctx context.Context, uniqueID string, dateOfBirth timex.Date) (*models.Token, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUniqueID(ctx, uniqueID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	// Structured calendar-date equality, not a string comparison.
	if user.DateOfBirth != dateOfBirth {
		return nil, common.ErrorUnauthorized
	}

	candidate, err := common.MakeRandHexString(tokenByteLen)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// The created flag is irrelevant to the caller: first and repeat logins
	// look identical and return the same value.
	token, _, err := s.repomanager.Tokens(s.db).GetOrCreate(ctx, user.ID, candidate)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return token, nil
}

// ResolveToken returns the user owning the presented bearer token, or
// common.ErrorUnauthorized when the token was never issued.
func (s *AuthService) ResolveToken(ctx context.Context, value string) (*models.User, error) {
	if value == "" {
		return nil, common.ErrorUnauthorized
	}
	user, err := s.repomanager.Tokens(s.db).FindUser(ctx, value)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// CreateUser provisions a new user with the given identifier and date of
// birth. New users start active. This path is reachable from the provisioning
// CLI only, never from the public HTTP surface.
func (s *AuthService) CreateUser(ctx context.Context, uniqueID string, dateOfBirth timex.Date) (*models.User, error) {
	if uniqueID == "" || len(uniqueID) > uniqueIDMaxLen {
		return nil, common.ErrorInvalidIdentifier
	}
	if dateOfBirth.IsZero() {
		return nil, fmt.Errorf("date of birth must be set")
	}

	user := &models.User{
		ID:          uuid.NewString(),
		UniqueID:    uniqueID,
		DateOfBirth: dateOfBirth,
		IsActive:    true,
	}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}
