package models

import "time"

// User represents a user record in the database
type User struct {
	ID       int64     `json:"Id" db:"id"`              // Primary key
	Username string    `json:"Username" db:"username"`  // Unique username
	Email    string    `json:"Email" db:"email"`        // Unique email
	Name     string    `json:"Name" db:"name"`          // Display name
	JoinDate time.Time `json:"JoinDate" db:"join_date"` // Creation timestamp
	Role     Role      `json:"Role" db:"role"`          // USER or ADMIN
}

// NewUser builds the user row written at signup.
func NewUser(req SignupRequest, joinDate time.Time) *User {
	return &User{
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		JoinDate: joinDate,
		Role:     RoleUser,
	}
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// example: johndoe
	Username string `json:"Username" validate:"required,alphanum,max=255"`

	// Display name
	// required: true
	// example: John Doe
	Name string `json:"Name" validate:"required,max=30"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"Email" validate:"required,email,max=255"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"Password" validate:"required,min=4,maxbytes=72"`
}

// UserUpdateRequest represents the JSON body for renaming a user
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// New display name
	// required: true
	// example: Jane Doe
	Name string `json:"Name" validate:"required,max=30"`
}

// UserResponse is the public projection of a user.
// swagger:model UserResponse
type UserResponse struct {
	Username string `json:"Username"`
	Name     string `json:"Name"`
	Email    string `json:"Email"`
}

// NewUserResponse projects a user onto the fields safe to expose.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}
