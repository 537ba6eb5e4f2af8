// Package router assembles the HTTP routes and their middleware chains.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/handlers"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/response"
	httpSwagger "github.com/swaggo/http-swagger"
)

// AuthService serves the /api/auth routes.
type AuthService interface {
	handlers.Signuper
	handlers.Loginer
	handlers.PasswordUpdater
}

// UserService serves the /api/users routes.
type UserService interface {
	handlers.UsersGetter
	handlers.UserGetter
	handlers.UserDeleter
	handlers.UserUpdater
}

// BlogService serves the /api/blogs routes.
type BlogService interface {
	handlers.BlogsGetter
	handlers.BlogGetter
	handlers.BlogCreator
	handlers.BlogUpdater
	handlers.BlogDeleter
}

// UserRepository resolves users for authentication and authorization.
type UserRepository interface {
	middlewares.UserReader
	middlewares.UserByIDReader
}

// Options holds everything the router needs.
type Options struct {
	BodyLimit   int64
	CORSOrigins []string

	// Tx wraps routes that write several rows. Usually middlewares.TxMiddleware.
	Tx func(http.Handler) http.Handler

	Tokener middlewares.Tokener
	Auths   middlewares.AuthReader
	Users   UserRepository
	Blogs   middlewares.BlogByIDReader

	AuthService AuthService
	UserService UserService
	BlogService BlogService
}

// New builds the application router.
func New(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chimiddleware.RequestSize(opts.BodyLimit))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, r, apperr.NotFound("Resource not found: The requested route does not exist"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.Send(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	authenticate := middlewares.AuthMiddleware(opts.Tokener, opts.Auths, opts.Users)
	authorizeUser := middlewares.AuthorizeUser(opts.Users)
	authorizeBlog := middlewares.AuthorizeBlog(opts.Blogs, opts.Users)

	r.Get("/", handlers.NewHomeHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/auth", func(r chi.Router) {
		r.With(opts.Tx, middlewares.Validate[models.SignupRequest]()).
			Post("/signup", handlers.NewSignupHandler(opts.AuthService))
		r.With(middlewares.Validate[models.LoginRequest]()).
			Post("/login", handlers.NewLoginHandler(opts.AuthService))
		r.With(authenticate, middlewares.Validate[models.UpdatePasswordRequest]()).
			Patch("/password", handlers.NewUpdatePasswordHandler(opts.AuthService))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", handlers.NewGetUsersHandler(opts.UserService))
		r.Get("/{id}", handlers.NewGetUserHandler(opts.UserService))
		r.With(authenticate, authorizeUser, opts.Tx).
			Delete("/{id}", handlers.NewDeleteUserHandler(opts.UserService))
		r.With(authenticate, authorizeUser, middlewares.Validate[models.UserUpdateRequest]()).
			Patch("/{id}", handlers.NewUpdateUserHandler(opts.UserService))
	})

	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", handlers.NewGetBlogsHandler(opts.BlogService))
		r.Get("/{id}", handlers.NewGetBlogHandler(opts.BlogService))
		r.With(authenticate, middlewares.Validate[models.BlogRequest]()).
			Post("/", handlers.NewCreateBlogHandler(opts.BlogService))
		r.With(authenticate, authorizeBlog, middlewares.Validate[models.BlogUpdateRequest]()).
			Patch("/{id}", handlers.NewUpdateBlogHandler(opts.BlogService))
		r.With(authenticate, authorizeBlog).
			Delete("/{id}", handlers.NewDeleteBlogHandler(opts.BlogService))
	})

	return r
}
