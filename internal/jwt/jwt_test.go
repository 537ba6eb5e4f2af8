package jwt

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/blog-api/internal/apperr"
	"github.com/sbilibin2017/blog-api/internal/models"
)

var identity = models.AuthClaims{Username: "alice", Name: "Alice", Role: models.RoleUser}

// bare strips the Bearer prefix the way the auth middleware does.
func bare(t *testing.T, token string) string {
	t.Helper()
	require.True(t, strings.HasPrefix(token, BearerPrefix))
	return strings.TrimPrefix(token, BearerPrefix)
}

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, identity)
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, bare(t, token))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, models.RoleUser, claims.Role)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, 2*time.Second)
	assert.Equal(t, time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWT_SecretNotSet(t *testing.T) {
	j := New()
	ctx := context.Background()

	token, err := j.Generate(ctx, identity)
	assert.ErrorIs(t, err, ErrSecretNotSet)
	assert.Empty(t, token)

	claims, err := j.GetClaims(ctx, "whatever")
	assert.ErrorIs(t, err, ErrSecretNotSet)
	assert.Nil(t, claims)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, identity)
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, bare(t, token))
	assert.ErrorIs(t, err, jwtlib.ErrTokenExpired)
	assert.Nil(t, claims)
	assert.Equal(t, http.StatusUnauthorized, apperr.From(err).Status())
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Equal(t, http.StatusUnauthorized, apperr.From(err).Status())
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, identity)
	require.NoError(t, err)

	_, err = j2.GetClaims(ctx, bare(t, token))
	assert.ErrorIs(t, err, jwtlib.ErrTokenSignatureInvalid)
}

func TestJWT_RejectsOtherSigningMethod(t *testing.T) {
	j := New(WithSecretKey("secret"))

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, Claims{
		Username: "alice",
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), signed)
	assert.Error(t, err)
}

func TestJWT_RejectsTokenWithoutIdentity(t *testing.T) {
	j := New(WithSecretKey("secret"))

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), signed)
	assert.ErrorIs(t, err, jwtlib.ErrTokenInvalidClaims)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", ErrTokenMissing},
		{"InvalidFormat", "Token mytoken123", "", ErrInvalidHeader},
		{"TooManyParts", "Bearer a b c", "", ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
