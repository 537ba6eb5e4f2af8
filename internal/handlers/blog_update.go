package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// BlogUpdater applies a partial blog update.
type BlogUpdater interface {
	UpdateByID(ctx context.Context, id int64, req models.BlogUpdateRequest) (*models.BlogResponse, error)
}

// NewUpdateBlogHandler returns an HTTP handler for partial blog updates.
// @Summary Update blog
// @Tags blogs
// @Accept json
// @Produce json,xml,html,plain
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param blogUpdateRequest body models.BlogUpdateRequest true "Fields to change"
// @Success 200 {object} response.Envelope{data=models.BlogResponse} "successfully updated your blog"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /api/blogs/{id} [patch]
func NewUpdateBlogHandler(svc BlogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := middlewares.ParseIDParam(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		req, err := validatedBody[models.BlogUpdateRequest](r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		blog, err := svc.UpdateByID(r.Context(), id, req)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, "successfully updated your blog", blog)
	}
}
