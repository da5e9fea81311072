package store

import (
	"context"

	"github.com/MKhiriev/go-code-tutor/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the client's single session record. Token and
// profile are always written and read together.
type SessionRepository interface {
	// SaveSession replaces the stored session with s in one statement.
	SaveSession(ctx context.Context, s models.Session) error

	// LoadSession returns the stored session. It returns [ErrSessionNotFound]
	// when nothing is stored and [ErrSessionIncomplete] when the stored row
	// cannot form a valid session.
	LoadSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the stored session. Deleting a missing session
	// is not an error.
	DeleteSession(ctx context.Context) error
}
