package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// BearerPrefix precedes every issued token.
const BearerPrefix = "Bearer "

var (
	ErrSecretNotSet  = errors.New("jwt secret key is not set")
	ErrTokenMissing  = fmt.Errorf("authorization header missing: %w", apperr.ErrUnauthenticated)
	ErrInvalidHeader = fmt.Errorf("invalid authorization header format: %w", apperr.ErrUnauthenticated)
)

// Claims is the identity snapshot carried by an access token.
type Claims struct {
	Username string      `json:"Username"`
	Name     string      `json:"Name"`
	Role     models.Role `json:"Role"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.SecretKey = secret
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.Exp = exp
	}
}

// New creates a new JWT instance. Tokens live one hour unless configured otherwise.
func New(opts ...Opt) *JWT {
	j := &JWT{Exp: time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate signs a token for the given identity and returns it with the
// "Bearer " prefix.
func (j *JWT) Generate(ctx context.Context, identity models.AuthClaims) (string, error) {
	if j.SecretKey == "" {
		return "", ErrSecretNotSet
	}

	now := time.Now()
	claims := Claims{
		Username: identity.Username,
		Name:     identity.Name,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.SecretKey))
	if err != nil {
		return "", err
	}
	return BearerPrefix + signed, nil
}

// GetClaims parses and verifies the token string and returns its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	if j.SecretKey == "" {
		return nil, ErrSecretNotSet
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuedAt())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.IssuedAt == nil || claims.Username == "" {
		return nil, fmt.Errorf("%w: identity claims missing", jwt.ErrTokenInvalidClaims)
	}

	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrTokenMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidHeader
	}

	return parts[1], nil
}
