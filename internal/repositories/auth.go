package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/models"
)

type AuthReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAuthReadRepository(db *sqlx.DB, txGetter TxGetter) *AuthReadRepository {
	return &AuthReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the credentials of username or nil when there are none.
func (r *AuthReadRepository) GetByUsername(ctx context.Context, username string) (*models.Auth, error) {
	const query = `
		SELECT id, username, password, password_modified_at
		FROM auth
		WHERE username = $1
	`

	var auth models.Auth
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &auth, query, username)

	// The password hash is never logged.
	logQuery(query, []any{username}, auth.ID, err)

	if err != nil {
		return nil, noRows(err)
	}
	return &auth, nil
}

type AuthWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAuthWriteRepository(db *sqlx.DB, txGetter TxGetter) *AuthWriteRepository {
	return &AuthWriteRepository{db: db, txGetter: txGetter}
}

// Signup inserts the user and its credentials; either both rows persist or neither.
func (r *AuthWriteRepository) Signup(ctx context.Context, user *models.User, auth *models.Auth) error {
	return inTx(ctx, r.db, r.txGetter, func(ex sqlx.ExtContext) error {
		const insertUser = `
			INSERT INTO users (username, email, name, join_date, role)
			VALUES ($1, $2, $3, $4, $5)
		`
		userArgs := []any{user.Username, user.Email, user.Name, user.JoinDate, user.Role}
		res, err := ex.ExecContext(ctx, insertUser, userArgs...)
		logQuery(insertUser, userArgs, rowsAffected(res), err)
		if err != nil {
			return err
		}

		const insertAuth = `
			INSERT INTO auth (username, password, password_modified_at)
			VALUES ($1, $2, $3)
		`
		res, err = ex.ExecContext(ctx, insertAuth, auth.Username, auth.Password, auth.PasswordModifiedAt)
		logQuery(insertAuth, []any{auth.Username, "***", auth.PasswordModifiedAt}, rowsAffected(res), err)
		return err
	})
}

// UpdatePassword stores a new hash together with its modification time.
func (r *AuthWriteRepository) UpdatePassword(ctx context.Context, username, hashedPassword string, modifiedAt time.Time) error {
	const query = `
		UPDATE auth
		SET password = $1, password_modified_at = $2
		WHERE username = $3
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, hashedPassword, modifiedAt, username)

	logQuery(query, []any{"***", modifiedAt, username}, rowsAffected(res), err)

	return err
}
