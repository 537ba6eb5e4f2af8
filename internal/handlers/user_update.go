package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// UserUpdater renames a user.
type UserUpdater interface {
	UpdateByID(ctx context.Context, id int64, req models.UserUpdateRequest) (*models.UserResponse, error)
}

// NewUpdateUserHandler returns an HTTP handler renaming a user.
// @Summary Update user name
// @Tags users
// @Accept json
// @Produce json,xml,html,plain
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param userUpdateRequest body models.UserUpdateRequest true "New name"
// @Success 200 {object} response.Envelope{data=models.UserResponse}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := middlewares.ParseIDParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		req, err := validatedBody[models.UserUpdateRequest](r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		user, err := svc.UpdateByID(r.Context(), id, req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, fmt.Sprintf("updated name of user with id %d", id), user)
	}
}
