package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-code-tutor/internal/adapter"
	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/store"
	"github.com/MKhiriev/go-code-tutor/models"
)

// clientSessionService is the Session object of the terminal client. It is
// created once at startup and shared by handle with the chat service and the
// TUI. bubbletea runs commands on goroutines, so state is guarded by mu.
type clientSessionService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	mu         sync.RWMutex
	session    models.Session
	authorized bool
	authErr    string
	inFlight   bool
}

// NewClientSessionService constructs an unauthorized session bound to the
// local session store and the service adapter. Call Restore to pick up a
// previously persisted session.
func NewClientSessionService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions: sessions,
		adapter:  serverAdapter,
		logger:   logger,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) error {
	stored, err := s.sessions.LoadSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case errors.Is(err, store.ErrSessionNotFound), errors.Is(err, store.ErrSessionIncomplete):
		s.logger.Debug().Err(err).Msg("no session to restore")
		s.clearLocked()
		return nil
	case err != nil:
		s.logger.Err(err).Str("func", "*clientSessionService.Restore").Msg("failed to read stored session")
		s.clearLocked()
		return fmt.Errorf("restore session: %w", err)
	}

	s.session = stored
	s.authorized = true
	s.logger.Info().Str("username", stored.Profile.Username).Msg("session restored")

	return nil
}

func (s *clientSessionService) Login(ctx context.Context, username, password string) error {
	creds, err := s.begin(username, password)
	defer s.end()
	if err != nil {
		return err
	}

	return s.login(ctx, creds)
}

func (s *clientSessionService) Register(ctx context.Context, username, password string) error {
	creds, err := s.begin(username, password)
	defer s.end()
	if err != nil {
		return err
	}

	if _, err = s.adapter.Register(ctx, creds); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.Register").Msg("registration failed")
		s.fail(adapter.MessageOr(err, app.MsgRegistrationFailed))
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	// registration yields no session; the chained login records its own error
	if err = s.login(ctx, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return nil
}

func (s *clientSessionService) Logout(ctx context.Context) {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to delete stored session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.authErr = ""
}

func (s *clientSessionService) Authorized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authorized
}

func (s *clientSessionService) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile := s.session.Profile
	profile.ChatHistory = append([]string{}, profile.ChatHistory...)
	return profile
}

func (s *clientSessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authorized {
		return ""
	}
	return s.session.Token
}

func (s *clientSessionService) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authorized {
		return ""
	}
	return s.session.UserID
}

func (s *clientSessionService) LastAuthError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authErr
}

func (s *clientSessionService) InFlight() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight
}

// login performs the /login exchange and persists the resulting session.
func (s *clientSessionService) login(ctx context.Context, creds models.Credentials) error {
	resp, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.login").Msg("login failed")
		s.fail(adapter.MessageOr(err, app.MsgLoginFailed))
		return fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	username := resp.Username
	if username == "" {
		username = creds.Username
	}

	session := models.Session{
		Token:   resp.Token,
		UserID:  resp.UserID,
		Profile: models.NewUserProfile(username),
	}

	if err = s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.login").Msg("failed to persist session")
		s.fail(app.MsgSessionNotSaved)
		return fmt.Errorf("%w: %w", ErrSavingSession, err)
	}

	s.mu.Lock()
	s.session = session
	s.authorized = true
	s.mu.Unlock()

	s.logger.Info().Str("username", username).Msg("logged in")

	return nil
}

// begin clears the previous auth error, raises the in-flight flag and
// validates the credentials. end must always follow.
func (s *clientSessionService) begin(username, password string) (models.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authErr = ""
	s.inFlight = true

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		s.authErr = app.MsgCredentialsRequired
		return models.Credentials{}, ErrEmptyCredentials
	}

	return models.Credentials{Username: username, Password: password}, nil
}

func (s *clientSessionService) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *clientSessionService) fail(msg string) {
	s.mu.Lock()
	s.authErr = msg
	s.mu.Unlock()
}

func (s *clientSessionService) clearLocked() {
	s.session = models.Session{}
	s.authorized = false
}
