package models

import "time"

// UserProfile is the minimal profile kept next to the credential on the
// client. ChatHistory starts empty on every login.
type UserProfile struct {
	Username    string   `json:"username"`
	ChatHistory []string `json:"chatHistory"`
}

// NewUserProfile returns a profile with an empty, non-nil history so that it
// serialises as `"chatHistory":[]`.
func NewUserProfile(username string) UserProfile {
	return UserProfile{Username: username, ChatHistory: []string{}}
}

// Session is the authenticated identity of the client: the opaque bearer
// token issued by the server and the profile created with it. Both are
// persisted and restored as one record.
type Session struct {
	Token   string      `json:"token"`
	UserID  string      `json:"user_id"`
	Profile UserProfile `json:"user_data"`
	SavedAt time.Time   `json:"saved_at"`
}

// Valid reports whether the session carries both a token and a username.
func (s Session) Valid() bool {
	return s.Token != "" && s.Profile.Username != ""
}
