package tokens

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

// GetOrCreate inserts (user_id, value) unless the user already holds a token;
// the UNIQUE constraint on user_id makes the insert a no-op for the losers of
// a race. The follow-up select reads whichever row won.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, userID string, value string) (*models.Token, bool, error) {

	insert :=
		`INSERT INTO auth_tokens (value, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, insert, value, userID)
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	query :=
		`SELECT value, user_id, created_at FROM auth_tokens
		 WHERE user_id = $1
		 `

	token := &models.Token{}
	err = r.db.QueryRowContext(ctx, query, userID).Scan(&token.Value, &token.UserID, &token.CreatedAt)
	if err != nil {
		return nil, false, fmt.Errorf("db error: %w", err)
	}

	return token, inserted == 1, nil
}

// FindUser resolves a token value to the owning user record.
func (r *PostgresRepository) FindUser(ctx context.Context, value string) (*models.User, error) {
	query :=
		`SELECT u.id, u.unique_id, u.date_of_birth, u.is_active, u.created_at
		 FROM auth_tokens t
		 JOIN users u ON u.id = t.user_id
		 WHERE t.value = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID, &user.UniqueID, &user.DateOfBirth, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
