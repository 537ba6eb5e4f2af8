package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

const msgWrongCredentials = "Wrong username or password"

// AuthReader defines read-only operations for credentials.
type AuthReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Auth, error)
}

// AuthWriter defines write operations for credentials.
type AuthWriter interface {
	Signup(ctx context.Context, user *models.User, auth *models.Auth) error
	UpdatePassword(ctx context.Context, username, hashedPassword string, modifiedAt time.Time) error
}

// UserByUsernameReader resolves a user by username.
type UserByUsernameReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, claims models.AuthClaims) (string, error)
}

// Hasher hashes and checks passwords.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hashed string) bool
}

// AuthService handles signup, login and password changes.
type AuthService struct {
	auths  AuthReader
	writer AuthWriter
	users  UserByUsernameReader
	jwt    JWTGenerator
	hasher Hasher
	now    func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(auths AuthReader, writer AuthWriter, users UserByUsernameReader, jwt JWTGenerator, hasher Hasher) *AuthService {
	return &AuthService{
		auths:  auths,
		writer: writer,
		users:  users,
		jwt:    jwt,
		hasher: hasher,
		now:    time.Now,
	}
}

// Signup creates a user with the USER role together with its credentials.
func (svc *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	hashed, err := svc.hasher.Hash(req.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return fmt.Errorf("hash password: %w", err)
	}

	now := svc.now()
	user := models.NewUser(req, now)
	auth := models.NewAuth(req.Username, hashed, now)

	if err := svc.writer.Signup(ctx, user, auth); err != nil {
		logger.Log.Errorw("failed to save user", "username", req.Username, "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a bearer token.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	auth, err := svc.auths.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("failed to get credentials", "err", err)
		return nil, err
	}
	if auth == nil || !svc.hasher.Compare(req.Password, auth.Password) {
		logger.Log.Infow("invalid credentials", "username", req.Username)
		return nil, apperr.Unauthorized(msgWrongCredentials)
	}

	user, err := svc.users.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Warnw("credentials without user", "username", req.Username)
		return nil, apperr.Unauthorized(msgWrongCredentials)
	}

	token, err := svc.jwt.Generate(ctx, models.NewAuthClaims(user))
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return models.NewLoginResponse(token), nil
}

// UpdateMyPassword replaces the password of user after checking the current
// one. Tokens issued before the change stop being accepted.
func (svc *AuthService) UpdateMyPassword(ctx context.Context, user *models.User, req models.UpdatePasswordRequest) error {
	auth, err := svc.auths.GetByUsername(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to get credentials", "err", err)
		return err
	}
	if auth == nil {
		return apperr.NotFound("User does not exist")
	}

	if !svc.hasher.Compare(req.CurrentPassword, auth.Password) {
		return apperr.BadRequest("Your current password is incorrect")
	}

	hashed, err := svc.hasher.Hash(req.NewPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return fmt.Errorf("hash password: %w", err)
	}

	if err := svc.writer.UpdatePassword(ctx, user.Username, hashed, svc.now()); err != nil {
		logger.Log.Errorw("failed to update password", "username", user.Username, "err", err)
		return err
	}

	return nil
}
