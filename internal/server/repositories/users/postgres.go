package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aspira-project/aspira-backend/internal/common"
	"github.com/aspira-project/aspira-backend/internal/dbx"
	"github.com/aspira-project/aspira-backend/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, unique_id, date_of_birth, is_active)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.UniqueID, user.DateOfBirth, user.IsActive).Scan(&user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUniqueID(ctx context.Context, uniqueID string) (*models.User, error) {
	query :=
		`SELECT id, unique_id, date_of_birth, is_active, created_at FROM users
		 WHERE unique_id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, uniqueID).Scan(
		&user.ID, &user.UniqueID, &user.DateOfBirth, &user.IsActive, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
