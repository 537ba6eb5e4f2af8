package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// BlogDeleter removes a blog.
type BlogDeleter interface {
	DeleteByID(ctx context.Context, id int64) error
}

// NewDeleteBlogHandler returns an HTTP handler removing a blog.
// @Summary Delete blog
// @Tags blogs
// @Produce json,xml,html,plain
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} response.Envelope "successfully deleted your blog"
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/blogs/{id} [delete]
func NewDeleteBlogHandler(svc BlogDeleter) http.HandlerFunc {
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

		response.Send(w, r, http.StatusOK, "successfully deleted your blog", nil)
	}
}
