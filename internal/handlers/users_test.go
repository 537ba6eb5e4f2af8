package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUsersGetter(ctrl)
	h := NewGetUsersHandler(mockSvc)

	t.Run("page forwarded", func(t *testing.T) {
		mockSvc.EXPECT().GetAll(gomock.Any(), models.UserQuery{Page: "2"}).
			Return([]models.UserResponse{{Username: "alice"}}, nil)

		rr, env := serve(t, http.MethodGet, "/api/users", "/api/users?page=2", "", nil, h)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "fetched all users", env.Message)

		var data []models.UserResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "alice", data[0].Username)
	})

	t.Run("empty page keeps empty list", func(t *testing.T) {
		mockSvc.EXPECT().GetAll(gomock.Any(), models.UserQuery{Page: "9"}).Return([]models.UserResponse{}, nil)

		rr, env := serve(t, http.MethodGet, "/api/users", "/api/users?page=9", "", nil, h)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rr, env := serve(t, http.MethodGet, "/api/users", "/api/users", "", nil, h)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "something went wrong", env.Message)
	})
}

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserGetter(ctrl)
	h := NewGetUserHandler(mockSvc)

	tests := []struct {
		name            string
		target          string
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:   "found",
			target: "/api/users/3",
			mockSetup: func() {
				mockSvc.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.UserResponse{Username: "alice"}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "fetched user with id 3",
		},
		{
			name:            "bad id",
			target:          "/api/users/abc",
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid parameter: ID must be a valid number",
		},
		{
			name:   "missing",
			target: "/api/users/4",
			mockSetup: func() {
				mockSvc.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, apperr.NotFound("User not found"))
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr, env := serve(t, http.MethodGet, "/api/users/{id}", tt.target, "", nil, h)
			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMessage, env.Message)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserDeleter(ctrl)
	h := NewDeleteUserHandler(mockSvc)

	mockSvc.EXPECT().DeleteByID(gomock.Any(), int64(5)).Return(nil)
	rr, env := serve(t, http.MethodDelete, "/api/users/{id}", "/api/users/5", "", nil, h)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "deleted user with id 5.", env.Message)

	mockSvc.EXPECT().DeleteByID(gomock.Any(), int64(6)).
		Return(apperr.Internal("An unexpected error occurred while deleting user", errors.New("fk")))
	rr, env = serve(t, http.MethodDelete, "/api/users/{id}", "/api/users/6", "", nil, h)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "An unexpected error occurred while deleting user", env.Message)
}

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserUpdater(ctrl)
	h := middlewares.Validate[models.UserUpdateRequest]()(NewUpdateUserHandler(mockSvc))

	tests := []struct {
		name            string
		body            string
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"Name":"Alicia"}`,
			mockSetup: func() {
				mockSvc.EXPECT().UpdateByID(gomock.Any(), int64(1), models.UserUpdateRequest{Name: "Alicia"}).
					Return(&models.UserResponse{Username: "alice", Name: "Alicia"}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "updated name of user with id 1",
		},
		{
			name:            "unknown field",
			body:            `{"Name":"Alicia","Role":"ADMIN"}`,
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "'Role' is not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rr, env := serve(t, http.MethodPatch, "/api/users/{id}", "/api/users/1", tt.body, nil, h)
			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedMessage, env.Message)
		})
	}
}
