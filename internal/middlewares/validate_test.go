package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Signup(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "valid",
			body:       `{"Username":"alice1","Name":"Alice","Email":"a@x.com","Password":"secret"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "empty body",
			body:        ``,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "request body is required",
		},
		{
			name:        "malformed json",
			body:        `{"Username":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "request body is not valid JSON",
		},
		{
			name:        "unknown field",
			body:        `{"Username":"alice","Name":"A","Email":"a@x.com","Password":"secret","Role":"ADMIN"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Role' is not allowed",
		},
		{
			name:        "wrong type",
			body:        `{"Username":5,"Name":"A","Email":"a@x.com","Password":"secret"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Username' must be a string",
		},
		{
			name:        "non alphanumeric username",
			body:        `{"Username":"al ice","Name":"A","Email":"a@x.com","Password":"secret"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Username' must only contain alpha-numeric characters",
		},
		{
			name:        "bad email and short password",
			body:        `{"Username":"alice","Name":"A","Email":"nope","Password":"abc"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Email' must be a valid email. 'Password' length must be at least 4 characters long",
		},
		{
			name:        "name too long",
			body:        `{"Username":"alice","Name":"` + strings.Repeat("n", 31) + `","Email":"a@x.com","Password":"secret"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Name' length must be less than or equal to 30 characters long",
		},
		{
			name:        "password longer than bcrypt accepts",
			body:        `{"Username":"alice","Name":"A","Email":"a@x.com","Password":"` + strings.Repeat("p", 80) + `"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Password' must not be longer than 72 bytes",
		},
		{
			name:        "multi-byte password over the byte limit",
			body:        `{"Username":"alice","Name":"A","Email":"a@x.com","Password":"` + strings.Repeat("é", 40) + `"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Password' must not be longer than 72 bytes",
		},
		{
			name:        "username longer than the column",
			body:        `{"Username":"` + strings.Repeat("u", 256) + `","Name":"A","Email":"a@x.com","Password":"secret"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Username' length must be less than or equal to 255 characters long",
		},
		{
			name:        "missing field",
			body:        `{"Username":"alice","Email":"a@x.com","Password":"secret"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'Name' is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SignupRequest
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, ok := BodyFromContext[models.SignupRequest](r.Context())
				require.True(t, ok)
				got = body
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			Validate[models.SignupRequest]()(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, envelopeMessage(t, rr))
			} else {
				assert.Equal(t, "alice1", got.Username)
			}
		})
	}
}

func TestValidate_BlogUpdate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{name: "title only", body: `{"title":"new"}`, wantStatus: http.StatusOK},
		{name: "description only", body: `{"description":"d"}`, wantStatus: http.StatusOK},
		{
			name:        "neither",
			body:        `{}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "value must contain at least one of [title, description]",
		},
		{
			name:        "title too long",
			body:        `{"title":"` + strings.Repeat("t", 101) + `"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "'title' length must be less than or equal to 100 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPatch, "/api/blogs/1", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			Validate[models.BlogUpdateRequest]()(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, envelopeMessage(t, rr))
			}
		})
	}
}

func TestValidate_BodyTooLarge(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	body := `{"title":"t","description":"` + strings.Repeat("d", 100) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/blogs", strings.NewReader(body))
	rr := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rr, req.Body, 16)

	Validate[models.BlogRequest]()(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "request body must not be larger than 16 bytes", envelopeMessage(t, rr))
}

func TestBodyFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := BodyFromContext[models.LoginRequest](req.Context())
	assert.False(t, ok)
}

func TestValidate_UpdatePassword_ByteLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	body := `{"currentPassword":"old","newPassword":"` + strings.Repeat("x", 73) + `"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/auth/password", strings.NewReader(body))
	rr := httptest.NewRecorder()
	Validate[models.UpdatePasswordRequest]()(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "'newPassword' must not be longer than 72 bytes", envelopeMessage(t, rr))

	body = `{"currentPassword":"old","newPassword":"` + strings.Repeat("x", 72) + `"}`
	req = httptest.NewRequest(http.MethodPatch, "/api/auth/password", strings.NewReader(body))
	rr = httptest.NewRecorder()
	Validate[models.UpdatePasswordRequest]()(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
