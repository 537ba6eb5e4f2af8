package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// BlogGetter fetches one blog.
type BlogGetter interface {
	GetByID(ctx context.Context, id int64) (*models.BlogResponse, error)
}

// NewGetBlogHandler returns an HTTP handler fetching one blog.
// @Summary Get blog
// @Tags blogs
// @Produce json,xml,html,plain
// @Param id path int true "Blog ID"
// @Success 200 {object} response.Envelope{data=models.BlogResponse} "successfully fetched blog"
// @Failure 400 {object} response.Envelope "Invalid parameter"
// @Failure 404 {object} response.Envelope "This blog doesn't exist"
// @Router /api/blogs/{id} [get]
func NewGetBlogHandler(svc BlogGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := middlewares.ParseIDParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		blog, err := svc.GetByID(r.Context(), id)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, "successfully fetched blog", blog)
	}
}
