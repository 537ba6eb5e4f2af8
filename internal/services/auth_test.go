package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/password"
	"github.com/sbilibin2017/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Signup(t *testing.T) {
	req := models.SignupRequest{Username: "alice", Name: "Alice", Email: "a@x.com", Password: "secret"}

	tests := []struct {
		name      string
		writerErr error
		wantErr   error
	}{
		{name: "successful signup"},
		{name: "writer error", writerErr: errors.New("duplicate"), wantErr: errors.New("duplicate")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := services.NewMockAuthWriter(ctrl)
			svc := services.NewAuthService(
				services.NewMockAuthReader(ctrl),
				writer,
				services.NewMockUserByUsernameReader(ctrl),
				services.NewMockJWTGenerator(ctrl),
				password.New(bcrypt.MinCost),
			)

			writer.EXPECT().
				Signup(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, u *models.User, a *models.Auth) error {
					assert.Equal(t, "alice", u.Username)
					assert.Equal(t, models.RoleUser, u.Role)
					assert.Equal(t, "alice", a.Username)
					assert.NotEqual(t, "secret", a.Password)
					assert.True(t, password.New(bcrypt.MinCost).Compare("secret", a.Password))
					assert.Equal(t, u.JoinDate, a.PasswordModifiedAt)
					return tt.writerErr
				})

			err := svc.Signup(context.Background(), req)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.New(bcrypt.MinCost).Hash("secret")
	require.NoError(t, err)

	alice := &models.User{ID: 1, Username: "alice", Name: "Alice", Role: models.RoleUser}
	auth := &models.Auth{Username: "alice", Password: hashed}

	tests := []struct {
		name        string
		password    string
		auth        *models.Auth
		authErr     error
		user        *models.User
		expectUser  bool
		expectToken bool
		tokenErr    error
		wantToken   string
		wantMessage string
		wantErr     bool
	}{
		{
			name:        "success",
			password:    "secret",
			auth:        auth,
			user:        alice,
			expectUser:  true,
			expectToken: true,
			wantToken:   "Bearer tok",
		},
		{
			name:        "unknown username",
			password:    "secret",
			wantMessage: "Wrong username or password",
			wantErr:     true,
		},
		{
			name:        "wrong password",
			password:    "nope",
			auth:        auth,
			wantMessage: "Wrong username or password",
			wantErr:     true,
		},
		{
			name:        "credentials without user",
			password:    "secret",
			auth:        auth,
			expectUser:  true,
			wantMessage: "Wrong username or password",
			wantErr:     true,
		},
		{
			name:     "storage failure",
			password: "secret",
			authErr:  errors.New("db error"),
			wantErr:  true,
		},
		{
			name:        "token failure",
			password:    "secret",
			auth:        auth,
			user:        alice,
			expectUser:  true,
			expectToken: true,
			tokenErr:    errors.New("no secret"),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auths := services.NewMockAuthReader(ctrl)
			users := services.NewMockUserByUsernameReader(ctrl)
			jwt := services.NewMockJWTGenerator(ctrl)
			svc := services.NewAuthService(auths, services.NewMockAuthWriter(ctrl), users, jwt, password.New(bcrypt.MinCost))

			auths.EXPECT().GetByUsername(gomock.Any(), "alice").Return(tt.auth, tt.authErr)
			if tt.expectUser {
				users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(tt.user, nil)
			}
			if tt.expectToken {
				jwt.EXPECT().
					Generate(gomock.Any(), models.AuthClaims{Username: "alice", Name: "Alice", Role: models.RoleUser}).
					Return("Bearer tok", tt.tokenErr)
			}

			res, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: tt.password})
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, res)
				if tt.wantMessage != "" {
					assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
					assert.Equal(t, tt.wantMessage, apperr.From(err).PublicMessage())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, res.Token)
		})
	}
}

func TestAuthService_UpdateMyPassword(t *testing.T) {
	hashed, err := password.New(bcrypt.MinCost).Hash("old-secret")
	require.NoError(t, err)

	alice := &models.User{ID: 1, Username: "alice"}

	tests := []struct {
		name         string
		auth         *models.Auth
		current      string
		expectUpdate bool
		updateErr    error
		wantKind     apperr.Kind
		wantMessage  string
		wantErr      bool
	}{
		{
			name:         "success",
			auth:         &models.Auth{Username: "alice", Password: hashed},
			current:      "old-secret",
			expectUpdate: true,
		},
		{
			name:        "wrong current password",
			auth:        &models.Auth{Username: "alice", Password: hashed},
			current:     "guess",
			wantErr:     true,
			wantKind:    apperr.KindBadRequest,
			wantMessage: "Your current password is incorrect",
		},
		{
			name:        "credentials missing",
			current:     "old-secret",
			wantErr:     true,
			wantKind:    apperr.KindNotFound,
			wantMessage: "User does not exist",
		},
		{
			name:         "writer error",
			auth:         &models.Auth{Username: "alice", Password: hashed},
			current:      "old-secret",
			expectUpdate: true,
			updateErr:    errors.New("db error"),
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auths := services.NewMockAuthReader(ctrl)
			writer := services.NewMockAuthWriter(ctrl)
			svc := services.NewAuthService(auths, writer, services.NewMockUserByUsernameReader(ctrl), services.NewMockJWTGenerator(ctrl), password.New(bcrypt.MinCost))

			auths.EXPECT().GetByUsername(gomock.Any(), "alice").Return(tt.auth, nil)
			if tt.expectUpdate {
				before := time.Now()
				writer.EXPECT().
					UpdatePassword(gomock.Any(), "alice", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, h string, modifiedAt time.Time) error {
						assert.True(t, password.New(bcrypt.MinCost).Compare("new-secret", h))
						assert.False(t, modifiedAt.Before(before))
						return tt.updateErr
					})
			}

			err := svc.UpdateMyPassword(context.Background(), alice, models.UpdatePasswordRequest{
				CurrentPassword: tt.current,
				NewPassword:     "new-secret",
			})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantMessage != "" {
				assert.True(t, apperr.Is(err, tt.wantKind))
				assert.Equal(t, tt.wantMessage, apperr.From(err).PublicMessage())
			}
		})
	}
}
