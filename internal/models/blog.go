package models

// Blog represents a blog post record in the database
type Blog struct {
	ID             int64  `db:"id"`
	Title          string `db:"title"`
	Description    string `db:"description"`
	AuthorName     string `db:"author_name"`
	AuthorUsername string `db:"author_username"`
}

// NewBlog builds a blog row, copying the author's name and username as they
// are at creation time.
func NewBlog(req BlogRequest, author *User) *Blog {
	return &Blog{
		Title:          req.Title,
		Description:    req.Description,
		AuthorName:     author.Name,
		AuthorUsername: author.Username,
	}
}

// BlogRequest represents the JSON body for creating a blog
// swagger:model BlogRequest
type BlogRequest struct {
	// required: true
	// example: Hello world
	Title string `json:"title" validate:"required,max=100"`

	// required: true
	// example: My first post
	Description string `json:"description" validate:"required"`
}

// BlogUpdateRequest represents the JSON body for a partial blog update.
// At least one field must be present.
// swagger:model BlogUpdateRequest
type BlogUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1"`
}

// BlogResponse is the API representation of a blog.
// swagger:model BlogResponse
type BlogResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	AuthorName     string `json:"authorName"`
	AuthorUsername string `json:"authorUsername"`
}

// NewBlogResponse maps a blog row to its API representation.
func NewBlogResponse(b *Blog) BlogResponse {
	return BlogResponse{
		ID:             b.ID,
		Title:          b.Title,
		Description:    b.Description,
		AuthorName:     b.AuthorName,
		AuthorUsername: b.AuthorUsername,
	}
}
