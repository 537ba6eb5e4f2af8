package models

import "time"

// Auth represents the credentials row paired with a user
type Auth struct {
	ID                 int64     `db:"id"`
	Username           string    `db:"username"`
	Password           string    `db:"password"` // bcrypt hash
	PasswordModifiedAt time.Time `db:"password_modified_at"`
}

// NewAuth builds the credentials row written at signup.
func NewAuth(username, hashedPassword string, modifiedAt time.Time) *Auth {
	return &Auth{
		Username:           username,
		Password:           hashedPassword,
		PasswordModifiedAt: modifiedAt,
	}
}

// AuthClaims is the identity snapshot embedded into an access token.
type AuthClaims struct {
	Username string
	Name     string
	Role     Role
}

// NewAuthClaims takes the identity snapshot of a user at login time.
func NewAuthClaims(u *User) AuthClaims {
	return AuthClaims{
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: johndoe
	Username string `json:"Username" validate:"required,alphanum"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"Password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Bearer token
	// example: Bearer JWT_TOKEN
	Token string `json:"Token"`
}

// NewLoginResponse wraps an issued token.
func NewLoginResponse(token string) *LoginResponse {
	return &LoginResponse{Token: token}
}

// UpdatePasswordRequest represents the JSON body for a password change
// swagger:model UpdatePasswordRequest
type UpdatePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"currentPassword" validate:"required"`

	// New password
	// required: true
	NewPassword string `json:"newPassword" validate:"required,min=4,maxbytes=72"`
}
