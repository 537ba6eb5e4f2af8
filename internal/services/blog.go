package services

//go:generate mockgen -source=blog.go -destination=mock_blog.go -package=services

import (
	"context"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

const msgBlogNotFound = "This blog doesn't exist"

// BlogReader defines read-only operations for blogs.
type BlogReader interface {
	List(ctx context.Context, offset, limit int) ([]models.Blog, error)
	ListByAuthor(ctx context.Context, authorUsername string, offset, limit int) ([]models.Blog, error)
	GetByID(ctx context.Context, id int64) (*models.Blog, error)
}

// BlogWriter defines write operations for blogs.
type BlogWriter interface {
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, id int64, title, description *string) error
	Delete(ctx context.Context, id int64) error
}

// BlogService serves the blog resource.
type BlogService struct {
	reader   BlogReader
	writer   BlogWriter
	pageSize int
}

// NewBlogService creates a new BlogService listing pageSize blogs per page.
func NewBlogService(reader BlogReader, writer BlogWriter, pageSize int) *BlogService {
	return &BlogService{
		reader:   reader,
		writer:   writer,
		pageSize: pageSize,
	}
}

// GetAll returns one page of blogs, optionally restricted to one author.
// Unlike users, an empty page is reported as not found.
func (svc *BlogService) GetAll(ctx context.Context, q models.BlogQuery) ([]models.BlogResponse, error) {
	page := models.ParsePage(q.Page)
	offset := models.Offset(page, svc.pageSize)

	var (
		blogs []models.Blog
		err   error
	)
	if q.AuthorUsername != "" {
		blogs, err = svc.reader.ListByAuthor(ctx, q.AuthorUsername, offset, svc.pageSize)
	} else {
		blogs, err = svc.reader.List(ctx, offset, svc.pageSize)
	}
	if err != nil {
		logger.Log.Errorw("failed to list blogs", "page", page, "author", q.AuthorUsername, "err", err)
		return nil, err
	}
	if len(blogs) == 0 {
		return nil, apperr.NotFound("No blogs found")
	}

	res := make([]models.BlogResponse, 0, len(blogs))
	for i := range blogs {
		res = append(res, models.NewBlogResponse(&blogs[i]))
	}
	return res, nil
}

// GetByID returns one blog.
func (svc *BlogService) GetByID(ctx context.Context, id int64) (*models.BlogResponse, error) {
	blog, err := svc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := models.NewBlogResponse(blog)
	return &res, nil
}

// Create stores a blog written by author.
func (svc *BlogService) Create(ctx context.Context, req models.BlogRequest, author *models.User) (*models.BlogResponse, error) {
	blog := models.NewBlog(req, author)

	if err := svc.writer.Create(ctx, blog); err != nil {
		logger.Log.Errorw("failed to create blog", "author", author.Username, "err", err)
		return nil, err
	}

	res := models.NewBlogResponse(blog)
	return &res, nil
}

// UpdateByID applies a partial update and returns the stored result.
func (svc *BlogService) UpdateByID(ctx context.Context, id int64, req models.BlogUpdateRequest) (*models.BlogResponse, error) {
	if _, err := svc.find(ctx, id); err != nil {
		return nil, err
	}

	if err := svc.writer.Update(ctx, id, req.Title, req.Description); err != nil {
		logger.Log.Errorw("failed to update blog", "id", id, "err", err)
		return nil, err
	}

	return svc.GetByID(ctx, id)
}

// DeleteByID removes a blog.
func (svc *BlogService) DeleteByID(ctx context.Context, id int64) error {
	if _, err := svc.find(ctx, id); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete blog", "id", id, "err", err)
		return err
	}
	return nil
}

func (svc *BlogService) find(ctx context.Context, id int64) (*models.Blog, error) {
	blog, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get blog", "id", id, "err", err)
		return nil, err
	}
	if blog == nil {
		return nil, apperr.NotFound(msgBlogNotFound)
	}
	return blog, nil
}
