package middlewares

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/jwt"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthReader looks up credentials by username.
type AuthReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Auth, error)
}

// UserReader looks up users by username.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthMiddleware authenticates the bearer token and attaches the current user
// to the request context.
//
// A token issued before the last password change is rejected. When the
// credentials exist but the user row does not, the request continues without
// an identity and later middleware decides.
func AuthMiddleware(tokener Tokener, auths AuthReader, users UserReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				response.Error(w, r, err)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				response.Error(w, r, err)
				return
			}

			auth, err := auths.GetByUsername(ctx, claims.Username)
			if err != nil {
				response.Error(w, r, err)
				return
			}
			if auth == nil {
				response.Error(w, r, apperr.NotFound("User does not exist"))
				return
			}

			// iat has whole-second precision.
			if auth.PasswordModifiedAt.Truncate(time.Second).After(claims.IssuedAt.Time) {
				response.Error(w, r, apperr.Unauthorized("Password changed, please login again"))
				return
			}

			user, err := users.GetByUsername(ctx, claims.Username)
			if err != nil {
				response.Error(w, r, err)
				return
			}
			if user == nil {
				logger.Log.Warnw("credentials without user", "username", claims.Username, "request_id", logger.RequestID(ctx))
			} else {
				ctx = WithUser(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
