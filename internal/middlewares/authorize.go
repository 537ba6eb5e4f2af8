package middlewares

//go:generate mockgen -source=authorize.go -destination=mock_authorize.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// UserByIDReader resolves the user addressed by the path.
type UserByIDReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// BlogByIDReader resolves the blog addressed by the path.
type BlogByIDReader interface {
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
}

// AuthorizeUser lets a request through only when the current user is the
// user addressed by {id} or an admin.
func AuthorizeUser(users UserByIDReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := ParseIDParam(r)
			if err != nil {
				response.Error(w, r, err)
				return
			}

			target, err := users.GetByID(r.Context(), id)
			if err != nil {
				response.Error(w, r, err)
				return
			}
			if target == nil {
				response.Error(w, r, apperr.NotFound("The requested user doesn't exist"))
				return
			}

			if err := checkOwnership(r.Context(), target.Username); err != nil {
				response.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthorizeBlog lets a request through only when the current user wrote the
// blog addressed by {id} or is an admin.
func AuthorizeBlog(blogs BlogByIDReader, users UserReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := ParseIDParam(r)
			if err != nil {
				response.Error(w, r, err)
				return
			}

			blog, err := blogs.GetByID(ctx, id)
			if err != nil {
				response.Error(w, r, err)
				return
			}
			if blog == nil {
				response.Error(w, r, apperr.NotFound("Requested blog doesn't exist"))
				return
			}

			author, err := users.GetByUsername(ctx, blog.AuthorUsername)
			if err != nil {
				response.Error(w, r, err)
				return
			}
			if author == nil {
				response.Error(w, r, apperr.NotFound("The author of this blog does not exist"))
				return
			}

			if err := checkOwnership(ctx, blog.AuthorUsername); err != nil {
				response.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func checkOwnership(ctx context.Context, owner string) error {
	current := UserFromContext(ctx)
	if current == nil {
		return apperr.Unauthorized("Token is not valid")
	}
	if current.Username != owner && current.Role != models.RoleAdmin {
		return apperr.Forbidden("You don't have permission to perform this request")
	}
	return nil
}
