package models

import "time"

// Credentials is the body of POST /login and POST /register.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /login.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// RegisterResponse is the success body of POST /register. The client does
// not consume it beyond the status code.
type RegisterResponse struct {
	Message string `json:"message"`
}

// User is the server-side account record.
type User struct {
	// UserID is the internal identifier; it is exposed to clients only as a
	// string in [LoginResponse].
	UserID int64 `json:"-"`

	// Username is unique across accounts.
	Username string `json:"username"`

	// PasswordHash is the encoded argon2id hash. Never serialised.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
