package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// PasswordUpdater changes the password of the authenticated user.
type PasswordUpdater interface {
	UpdateMyPassword(ctx context.Context, user *models.User, req models.UpdatePasswordRequest) error
}

// NewUpdatePasswordHandler returns an HTTP handler for password changes.
// Tokens issued before the change are rejected afterwards.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json,xml,html,plain
// @Security BearerAuth
// @Param updatePasswordRequest body models.UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} response.Envelope "successfully updated password"
// @Failure 400 {object} response.Envelope "Your current password is incorrect"
// @Failure 401 {object} response.Envelope "Token is not valid"
// @Router /api/auth/password [patch]
func NewUpdatePasswordHandler(svc PasswordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		req, err := validatedBody[models.UpdatePasswordRequest](r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := svc.UpdateMyPassword(r.Context(), user, req); err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, "successfully updated password", nil)
	}
}
