package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalSessionRepository constructs the SQLite-backed [SessionRepository].
func NewLocalSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, s models.Session) error {
	userData, err := json.Marshal(s.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}

	query, args, err := buildSaveSessionQuery(s.Token, s.UserID, string(userData), l.now())
	if err != nil {
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Msg("failed to upsert session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.Session{}, err
	}

	var (
		s        models.Session
		userData string
	)
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&s.Token, &s.UserID, &userData, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.LoadSession").
			Msg("failed to query session")
		return models.Session{}, fmt.Errorf("%w: load session: %w", ErrExecutingQuery, err)
	}

	if s.Token == "" || userData == "" {
		return models.Session{}, ErrSessionIncomplete
	}

	if err = json.Unmarshal([]byte(userData), &s.Profile); err != nil {
		l.logger.Warn().
			Str("func", "localSessionRepository.LoadSession").
			Msg("stored user data is not valid JSON")
		return models.Session{}, ErrSessionIncomplete
	}
	if s.Profile.ChatHistory == nil {
		s.Profile.ChatHistory = []string{}
	}

	if !s.Valid() {
		return models.Session{}, ErrSessionIncomplete
	}

	return s, nil
}

func (l *localSessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		l.logger.Err(err).
			Str("func", "localSessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("%w: delete session: %w", ErrExecutingStatement, err)
	}

	return nil
}
