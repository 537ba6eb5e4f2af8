package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
)

// BlogCreator stores a blog for its author.
type BlogCreator interface {
	Create(ctx context.Context, req models.BlogRequest, author *models.User) (*models.BlogResponse, error)
}

// NewCreateBlogHandler returns an HTTP handler creating a blog written by the
// authenticated user.
// @Summary Create blog
// @Tags blogs
// @Accept json
// @Produce json,xml,html,plain
// @Security BearerAuth
// @Param blogRequest body models.BlogRequest true "Blog"
// @Success 201 {object} response.Envelope{data=models.BlogResponse} "successfully created you blog"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/blogs [post]
func NewCreateBlogHandler(svc BlogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author, err := currentUser(r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		req, err := validatedBody[models.BlogRequest](r)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		blog, err := svc.Create(r.Context(), req, author)
		if err != nil {
			response.Error(w, r, err)
			return
		}

		response.Send(w, r, http.StatusCreated, "successfully created you blog", blog)
	}
}
