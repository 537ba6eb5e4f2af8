package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

const msgUserNotFound = "User not found"

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context, offset, limit int) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	UpdateName(ctx context.Context, id int64, name string) (bool, error)
	Delete(ctx context.Context, id int64, username string) error
}

// UserService serves the user resource.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	pageSize int
}

// NewUserService creates a new UserService listing pageSize users per page.
func NewUserService(reader UserReader, writer UserWriter, pageSize int) *UserService {
	return &UserService{
		reader:   reader,
		writer:   writer,
		pageSize: pageSize,
	}
}

// GetAll returns one page of users. A page past the end is empty.
func (svc *UserService) GetAll(ctx context.Context, q models.UserQuery) ([]models.UserResponse, error) {
	page := models.ParsePage(q.Page)

	users, err := svc.reader.List(ctx, models.Offset(page, svc.pageSize), svc.pageSize)
	if err != nil {
		logger.Log.Errorw("failed to list users", "page", page, "err", err)
		return nil, err
	}

	res := make([]models.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, models.NewUserResponse(&users[i]))
	}
	return res, nil
}

// GetByID returns the public projection of one user.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := svc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := models.NewUserResponse(user)
	return &res, nil
}

// DeleteByID removes a user with its credentials and blogs.
func (svc *UserService) DeleteByID(ctx context.Context, id int64) error {
	user, err := svc.find(ctx, id)
	if err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, id, user.Username); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return apperr.Internal("An unexpected error occurred while deleting user", err)
	}
	return nil
}

// UpdateByID renames a user and returns the updated projection.
func (svc *UserService) UpdateByID(ctx context.Context, id int64, req models.UserUpdateRequest) (*models.UserResponse, error) {
	user, err := svc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := svc.writer.UpdateName(ctx, id, req.Name)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	if !updated {
		return nil, apperr.Internal("An unexpected error occurred while updating user", nil)
	}

	user.Name = req.Name
	res := models.NewUserResponse(user)
	return &res, nil
}

func (svc *UserService) find(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound(msgUserNotFound)
	}
	return user, nil
}
