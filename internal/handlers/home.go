package handlers

import (
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/response"
)

// NewHomeHandler returns the liveness greeting.
// @Summary Greeting
// @Tags health
// @Produce json,xml,html,plain
// @Success 200 {object} response.Envelope "Hello"
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Send(w, r, http.StatusOK, "Hello", nil)
	}
}
