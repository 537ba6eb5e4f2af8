package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// UserGetter fetches one user.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserResponse, error)
}

// NewGetUserHandler returns an HTTP handler fetching one user.
// @Summary Get user
// @Tags users
// @Produce json,xml,html,plain
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope{data=models.UserResponse}
// @Failure 400 {object} response.Envelope "Invalid parameter"
// @Failure 404 {object} response.Envelope "User not found"
// @Router /api/users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := middlewares.ParseIDParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, fmt.Sprintf("fetched user with id %d", id), user)
	}
}
