package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// UsersGetter lists users page by page.
type UsersGetter interface {
	GetAll(ctx context.Context, q models.UserQuery) ([]models.UserResponse, error)
}

// NewGetUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json,xml,html,plain
// @Param page query int false "1-based page number"
// @Success 200 {object} response.Envelope{data=[]models.UserResponse} "fetched all users"
// @Router /api/users [get]
func NewGetUsersHandler(svc UsersGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.GetAll(r.Context(), models.UserQuery{Page: r.URL.Query().Get("page")})
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, "fetched all users", users)
	}
}
