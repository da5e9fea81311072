package service

import (
	"context"

	"github.com/MKhiriev/go-code-tutor/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// CredentialSource hands the active credential to components that call the
// service on the user's behalf. Both values are empty while unauthorized.
type CredentialSource interface {
	Token() string
	UserID() string
}

// ClientSessionService owns the single authenticated session of the
// terminal client: login, registration, logout and restore at startup.
//
// The session moves Unauthorized → Authorized on login/register success or
// a successful Restore, and back to Unauthorized on Logout.
type ClientSessionService interface {
	CredentialSource

	// Restore reads the persisted session record. A missing or malformed
	// record leaves the session unauthorized and is not an error; storage
	// I/O failures are returned.
	Restore(ctx context.Context) error

	// Login authenticates against the service and persists the new session.
	// The previous auth error is cleared first. On failure the error message
	// is recorded as LastAuthError and the error is returned.
	Login(ctx context.Context, username, password string) error

	// Register creates the account and then logs in with the same
	// credentials. A failed chained login is reported through the
	// registration flow.
	Register(ctx context.Context, username, password string) error

	// Logout clears the persisted record and the in-memory session. It
	// never fails and is safe to call while unauthorized.
	Logout(ctx context.Context)

	Authorized() bool
	Profile() models.UserProfile
	LastAuthError() string

	// InFlight reports whether a login or registration is running.
	InFlight() bool
}

// ClientChatService turns user submissions into exchanges with the service
// and keeps the in-memory transcript of the current session.
type ClientChatService interface {
	// BuildPromptObject builds the request payload. Blank code yields an
	// empty Code field; otherwise code is fenced with the lower-cased
	// language marker.
	BuildPromptObject(userID, text, code string, language models.Language) models.PromptObject

	// BuildUserTurn builds the user-role turn shown in the feed.
	BuildUserTurn(text, code string) models.ConversationTurn

	// BuildModelTurn builds the model-role turn for a reply.
	BuildModelTurn(response models.ChatResponse) models.ConversationTurn

	// SendPrompt posts prompt with the active credential. Without a
	// credential it fails with ErrNoCredential before any network call. The
	// in-flight flag is held for the duration of the call.
	SendPrompt(ctx context.Context, prompt models.PromptObject) (models.ChatResponse, error)

	// Submit appends the user turn, sends the prompt and appends exactly one
	// model turn on success. Blank text and a request already in flight are
	// rejected.
	Submit(ctx context.Context, text, code string, language models.Language) (models.ChatResponse, error)

	// Transcript returns a copy of the turns exchanged so far.
	Transcript() []models.ConversationTurn
	LastChatError() string
	InFlight() bool
	LastResponse() (models.ChatResponse, bool)

	// Reset drops the transcript and the recorded error and reply.
	Reset()
}
