package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// BlogsGetter lists blogs page by page.
type BlogsGetter interface {
	GetAll(ctx context.Context, q models.BlogQuery) ([]models.BlogResponse, error)
}

// NewGetBlogsHandler returns an HTTP handler listing blogs.
// @Summary List blogs
// @Tags blogs
// @Produce json,xml,html,plain
// @Param page query int false "1-based page number"
// @Param authorUsername query string false "Only blogs by this author"
// @Success 200 {object} response.Envelope{data=[]models.BlogResponse} "successfully fetched all blogs"
// @Failure 404 {object} response.Envelope "No blogs found"
// @Router /api/blogs [get]
func NewGetBlogsHandler(svc BlogsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		blogs, err := svc.GetAll(r.Context(), models.BlogQuery{
			AuthorUsername: query.Get("authorUsername"),
			Page:           query.Get("page"),
		})
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusOK, "successfully fetched all blogs", blogs)
	}
}
