package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/blog-api/internal/models"
)

var userColumns = []string{"id", "username", "email", "name", "join_date", "role"}

func TestUserReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)
	joined := time.Date(2024, 5, 24, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id LIMIT $1 OFFSET $2")).
		WithArgs(4, 4).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(5, "eve", "eve@x.com", "Eve", joined, "USER").
			AddRow(6, "root", "root@x.com", "Root", joined, "ADMIN"))

	users, err := repo.List(context.Background(), 4, 4)
	require.NoError(t, err)
	assert.Equal(t, []models.User{
		{ID: 5, Username: "eve", Email: "eve@x.com", Name: "Eve", JoinDate: joined, Role: models.RoleUser},
		{ID: 6, Username: "root", Email: "root@x.com", Name: "Root", JoinDate: joined, Role: models.RoleAdmin},
	}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(4, 400).
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.List(context.Background(), 400, 4)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(1, "alice", "alice@x.com", "Alice", time.Now(), "USER"))

		user, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByID(context.Background(), 999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(2)).
			WillReturnError(errors.New("connection reset"))

		user, err := repo.GetByID(context.Background(), 2)
		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "alice", "alice@x.com", "Alice", time.Now(), "ADMIN"))

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateName(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
		wantErr  bool
	}{
		{name: "one row", affected: 1, want: true},
		{name: "no rows", affected: 0, want: false},
		{name: "db error", execErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserWriteRepository(db, nil)

			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET name = $1 WHERE id = $2")).
				WithArgs("Bob", int64(3))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			ok, err := repo.UpdateName(context.Background(), 3, "Bob")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserWriteRepository_Delete_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM auth WHERE username = $1")).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 1, "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Delete_RollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM auth WHERE username = $1")).
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	assert.Error(t, repo.Delete(context.Background(), 1, "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Delete_UsesContextTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, ctxTxGetter)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM auth")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)
	ctx := context.WithValue(context.Background(), txKey{}, tx)

	// No commit is expected: the owner of the context transaction decides.
	require.NoError(t, repo.Delete(ctx, 1, "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
