package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/models"
)

type BlogReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBlogReadRepository(db *sqlx.DB, txGetter TxGetter) *BlogReadRepository {
	return &BlogReadRepository{db: db, txGetter: txGetter}
}

// List returns one page of blogs ordered by id.
func (r *BlogReadRepository) List(ctx context.Context, offset, limit int) ([]models.Blog, error) {
	const query = `
		SELECT id, title, description, author_name, author_username
		FROM blogs
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	return r.selectBlogs(ctx, query, limit, offset)
}

// ListByAuthor returns one page of the blogs written by authorUsername.
func (r *BlogReadRepository) ListByAuthor(ctx context.Context, authorUsername string, offset, limit int) ([]models.Blog, error) {
	const query = `
		SELECT id, title, description, author_name, author_username
		FROM blogs
		WHERE author_username = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	return r.selectBlogs(ctx, query, authorUsername, limit, offset)
}

func (r *BlogReadRepository) selectBlogs(ctx context.Context, query string, args ...any) ([]models.Blog, error) {
	blogs := []models.Blog{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &blogs, query, args...)

	logQuery(query, args, len(blogs), err)

	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetByID returns the blog or nil when it does not exist.
func (r *BlogReadRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	const query = `
		SELECT id, title, description, author_name, author_username
		FROM blogs
		WHERE id = $1
	`

	var blog models.Blog
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &blog, query, id)

	logQuery(query, []any{id}, blog, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &blog, nil
}

type BlogWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBlogWriteRepository(db *sqlx.DB, txGetter TxGetter) *BlogWriteRepository {
	return &BlogWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a blog and fills in its generated ID.
func (r *BlogWriteRepository) Create(ctx context.Context, blog *models.Blog) error {
	const query = `
		INSERT INTO blogs (title, description, author_name, author_username)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{blog.Title, blog.Description, blog.AuthorName, blog.AuthorUsername}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&blog.ID)

	logQuery(query, args, blog.ID, err)

	return err
}

// Update sets the non-nil fields and leaves the others untouched.
func (r *BlogWriteRepository) Update(ctx context.Context, id int64, title, description *string) error {
	const query = `
		UPDATE blogs
		SET title = COALESCE($1, title), description = COALESCE($2, description)
		WHERE id = $3
	`
	args := []any{title, description, id}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	return err
}

// Delete removes a blog.
func (r *BlogWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM blogs WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)

	logQuery(query, []any{id}, rowsAffected(res), err)

	return err
}
