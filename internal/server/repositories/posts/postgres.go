package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/goblog/internal/common"
	"github.com/dmitrijs2005/goblog/internal/dbx"
	"github.com/dmitrijs2005/goblog/internal/server/models"
)

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
	err := r.db.QueryRowContext(ctx, `SELECT nextval('posts_id_seq')`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: allocating post id: %v", common.ErrInternal, err)
	}

	return id, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	query :=
		`INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.AuthorID, post.CreatedAt, post.UpdatedAt)

	if err != nil {
		return fmt.Errorf("%w: inserting post: %v", common.ErrInternal, err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Post, error) {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	return scanPost(r.db.QueryRowContext(ctx,
		`SELECT id, title, content, author_id, created_at, updated_at FROM posts
		 WHERE id = $1
		 `, id), id)
}

func (r *PostgresRepository) GetAuthor(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	var authorID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT author_id FROM posts WHERE id = $1`, id).Scan(&authorID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: %d", common.ErrPostNotFound, id)
		}
		return 0, fmt.Errorf("%w: fetching post author: %v", common.ErrInternal, err)
	}

	return authorID, nil
}

// Update reads the current row under a lock, applies the supplied fields
// through the entity and writes the result back, all in one transaction.
func (r *PostgresRepository) Update(ctx context.Context, id int64, title, content string) (*models.Post, error) {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	var post *models.Post
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		post, err = scanPost(tx.QueryRowContext(ctx,
			`SELECT id, title, content, author_id, created_at, updated_at FROM posts
			 WHERE id = $1
			 FOR UPDATE
			 `, id), id)
		if err != nil {
			return err
		}

		post.Update(title, content)

		_, err = tx.ExecContext(ctx,
			`UPDATE posts SET title = $2, content = $3, updated_at = $4
			 WHERE id = $1
			 `, post.ID, post.Title, post.Content, post.UpdatedAt)
		if err != nil {
			return fmt.Errorf("%w: updating post: %v", common.ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting post: %v", common.ErrInternal, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: deleting post: %v", common.ErrInternal, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: delete removed no rows for post %d", common.ErrInternal, id)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int64) ([]*models.Post, error) {
	ctx, cancel := dbx.WithTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, author_id, created_at, updated_at FROM posts
		 ORDER BY updated_at DESC, id DESC
		 OFFSET $1 LIMIT $2
		 `, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: listing posts: %v", common.ErrInternal, err)
	}
	defer rows.Close()

	result := make([]*models.Post, 0, limit)
	for rows.Next() {
		post := &models.Post{}
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID,
			&post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning post: %v", common.ErrInternal, err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listing posts: %v", common.ErrInternal, err)
	}

	return result, nil
}

func scanPost(row *sql.Row, id int64) (*models.Post, error) {
	post := &models.Post{}
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID,
		&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", common.ErrPostNotFound, id)
		}
		return nil, fmt.Errorf("%w: fetching post: %v", common.ErrInternal, err)
	}
	return post, nil
}
