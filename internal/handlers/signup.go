package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, req models.SignupRequest) error
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Create a user account with the USER role
// @Tags auth
// @Accept json
// @Produce json,xml,html,plain
// @Param signupRequest body models.SignupRequest true "Signup Request"
// @Success 201 {object} response.Envelope "successfully signed up"
// @Failure 400 {object} response.Envelope "Validation error or duplicate username/email"
// @Router /api/auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := validatedBody[models.SignupRequest](r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		if err := svc.Signup(r.Context(), req); err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusCreated, "successfully signed up", nil)
	}
}
