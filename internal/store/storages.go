package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	UserRepository    UserRepository
	HistoryRepository HistoryRepository

	db    *DB
	mongo *mongo.Client
}

// NewStorages connects PostgreSQL, applies the server migrations and wires
// the repositories. Chat history goes to MongoDB when cfg.History.URI is set,
// otherwise to PostgreSQL.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}

	if cfg.History.URI == "" {
		s.HistoryRepository = NewHistoryRepository(db, log)
		return s, nil
	}

	client, mdb, err := NewConnectMongo(ctx, cfg.History, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mongo connection error: %w", err)
	}
	s.mongo = client
	s.HistoryRepository = NewMongoHistoryRepository(mdb, log)
	log.Info().Str("database", cfg.History.Database).Msg("chat history stored in mongo")

	return s, nil
}

// Close releases every connection held by the storages.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	if s.mongo != nil {
		errs = append(errs, s.mongo.Disconnect(ctx))
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
