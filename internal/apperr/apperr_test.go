package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestError_Status(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{BadRequest("x"), http.StatusBadRequest},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Forbidden("x"), http.StatusForbidden},
		{NotFound("x"), http.StatusNotFound},
		{Internal("x", nil), http.StatusInternalServerError},
		{Unexpected(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Message, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestError_PublicMessage(t *testing.T) {
	assert.Equal(t, "User not found", NotFound("User not found").PublicMessage())
	assert.Equal(t, "delete failed", Internal("delete failed", errors.New("db down")).PublicMessage())
	assert.Equal(t, GenericMessage, Unexpected(errors.New("secret detail")).PublicMessage())
}

func TestFrom(t *testing.T) {
	notFound := NotFound("This blog doesn't exist")

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"app error passes through", notFound, http.StatusNotFound, "This blog doesn't exist"},
		{"wrapped app error", fmt.Errorf("ctx: %w", notFound), http.StatusNotFound, "This blog doesn't exist"},
		{"expired token", fmt.Errorf("parse: %w", jwt.ErrTokenExpired), http.StatusUnauthorized, msgTokenExpired},
		{"malformed token", fmt.Errorf("parse: %w", jwt.ErrTokenMalformed), http.StatusUnauthorized, msgTokenInvalid},
		{"bad signature", jwt.ErrTokenSignatureInvalid, http.StatusUnauthorized, msgTokenInvalid},
		{"missing token", fmt.Errorf("header missing: %w", ErrUnauthenticated), http.StatusUnauthorized, "Token is not valid"},
		{
			"unique violation",
			&pgconn.PgError{Code: "23505", Detail: "Key (email)=(a@x.com) already exists."},
			http.StatusBadRequest, "email already exists",
		},
		{
			"unique violation without detail",
			fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			http.StatusBadRequest, "duplicate entry",
		},
		{"other pg error", &pgconn.PgError{Code: "23503"}, http.StatusInternalServerError, GenericMessage},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, GenericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status())
			assert.Equal(t, tt.wantMessage, got.PublicMessage())
		})
	}

	assert.Nil(t, From(nil))
}

func TestIs(t *testing.T) {
	assert.True(t, Is(NotFound("x"), KindNotFound))
	assert.True(t, Is(fmt.Errorf("w: %w", Forbidden("x")), KindForbidden))
	assert.False(t, Is(NotFound("x"), KindForbidden))
	assert.False(t, Is(errors.New("x"), KindNotFound))
}
