package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	_ "github.com/sbilibin2017/blog-api/docs"
	"github.com/sbilibin2017/blog-api/internal/config"
	"github.com/sbilibin2017/blog-api/internal/jwt"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/middlewares"
	"github.com/sbilibin2017/blog-api/internal/migrations"
	"github.com/sbilibin2017/blog-api/internal/password"
	"github.com/sbilibin2017/blog-api/internal/repositories"
	"github.com/sbilibin2017/blog-api/internal/router"
	"github.com/sbilibin2017/blog-api/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

var errJWTSecretMissing = errors.New("JWT_SECRET_KEY is not set")

// @title blog-api API
// @version 1.0.0
// @description REST backend for user accounts and blog posts
// @host localhost:3500
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database and HTTP server.
// It applies migrations, wires the layers together and handles graceful shutdown.
func run(ctx context.Context, cfg config.Config) error {
	if cfg.JWTSecretKey == "" {
		return errJWTSecretMissing
	}

	if err := logger.Initialize(cfg.LogLevel, cfg.AppEnv); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Run(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	handler := newHandler(cfg, db)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newHandler wires repositories, services and middleware into the router.
func newHandler(cfg config.Config, db *sqlx.DB) http.Handler {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))
	hasher := password.New(password.DefaultCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	authReadRepo := repositories.NewAuthReadRepository(db, middlewares.GetTxFromContext)
	authWriteRepo := repositories.NewAuthWriteRepository(db, middlewares.GetTxFromContext)
	blogReadRepo := repositories.NewBlogReadRepository(db, middlewares.GetTxFromContext)
	blogWriteRepo := repositories.NewBlogWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(authReadRepo, authWriteRepo, userReadRepo, tokens, hasher)
	userService := services.NewUserService(userReadRepo, userWriteRepo, cfg.PageSize)
	blogService := services.NewBlogService(blogReadRepo, blogWriteRepo, cfg.PageSize)

	return router.New(router.Options{
		BodyLimit:   cfg.BodyLimit,
		CORSOrigins: cfg.CORSOrigins,
		Tx:          middlewares.TxMiddleware(db),
		Tokener:     tokens,
		Auths:       authReadRepo,
		Users:       userReadRepo,
		Blogs:       blogReadRepo,
		AuthService: authService,
		UserService: userService,
		BlogService: blogService,
	})
}
