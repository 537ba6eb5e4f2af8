package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json,xml,html,plain
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} response.Envelope{data=models.LoginResponse} "JWT token returned"
// @Failure 400 {object} response.Envelope "Invalid request body"
// @Failure 401 {object} response.Envelope "Wrong username or password"
// @Router /api/auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := validatedBody[models.LoginRequest](r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		res, err := svc.Login(r.Context(), req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, "logged in", res)
	}
}
