// Package handlers holds one constructor per API route. Request bodies are
// decoded and validated by middlewares.Validate before a handler runs, and
// every failure is written by response.Error.
package handlers

//go:generate mockgen -destination=mock_handlers.go -package=handlers . Signuper,Loginer,PasswordUpdater,UsersGetter,UserGetter,UserDeleter,UserUpdater,BlogsGetter,BlogGetter,BlogCreator,BlogUpdater,BlogDeleter

import (
	"errors"
	"net/http"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
)

var errBodyNotValidated = errors.New("request body was not validated")

func validatedBody[T any](r *http.Request) (T, error) {
	body, ok := middlewares.BodyFromContext[T](r.Context())
	if !ok {
		return body, apperr.Unexpected(errBodyNotValidated)
	}
	return body, nil
}

func currentUser(r *http.Request) (*models.User, error) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		return nil, apperr.Unauthorized("Token is not valid")
	}
	return user, nil
}
