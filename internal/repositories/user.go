package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/models"
)

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// List returns one page of users ordered by id.
func (r *UserReadRepository) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	const query = `
		SELECT id, username, email, name, join_date, role
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, limit, offset)

	logQuery(query, []any{limit, offset}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, email, name, join_date, role
		FROM users
		WHERE id = $1
	`
	return r.get(ctx, query, id)
}

// GetByUsername returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, email, name, join_date, role
		FROM users
		WHERE username = $1
	`
	return r.get(ctx, query, username)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// UpdateName renames a user and reports whether exactly one row changed.
func (r *UserWriteRepository) UpdateName(ctx context.Context, id int64, name string) (bool, error) {
	const query = `UPDATE users SET name = $1 WHERE id = $2`
	args := []any{name, id}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Delete removes the user and its credentials together.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64, username string) error {
	return inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		const deleteAuth = `DELETE FROM auth WHERE username = $1`
		res, err := ex.ExecContext(ctx, deleteAuth, username)
		logQuery(deleteAuth, []any{username}, rowsAffected(res), err)
		if err != nil {
			return err
		}

		const deleteUser = `DELETE FROM users WHERE id = $1`
		res, err = ex.ExecContext(ctx, deleteUser, id)
		logQuery(deleteUser, []any{id}, rowsAffected(res), err)
		return err
	})
}
