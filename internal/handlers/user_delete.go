package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// UserDeleter removes a user.
type UserDeleter interface {
	DeleteByID(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler removing a user together with
// its credentials and blogs.
// @Summary Delete user
// @Tags users
// @Produce json,xml,html,plain
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := middlewares.ParseIDParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := svc.DeleteByID(r.Context(), id); err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, fmt.Sprintf("deleted user with id %d.", id), nil)
	}
}
