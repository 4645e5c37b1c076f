package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/goblog/internal/common"
	"github.com/dmitrijs2005/goblog/internal/dbx"
	"github.com/dmitrijs2005/goblog/internal/server/models"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) NextID(ctx context.Context) (int64, error) {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	var id int64
	err := r.db.QueryRowContext(ctx, `SELECT nextval('users_id_seq')`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: allocating user id: %v", common.ErrInternal, err)
	}

	return id, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	query :=
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", common.ErrAlreadyExists, user.Username)
		}
		return fmt.Errorf("%w: inserting user: %v", common.ErrInternal, err)
	}

	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	query :=
		`SELECT id, username, email, password_hash, created_at FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", common.ErrUserNotFound, username)
		}
		return nil, fmt.Errorf("%w: fetching user: %v", common.ErrInternal, err)
	}

	return user, nil
}
