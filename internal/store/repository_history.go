// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
)

// historyRepository keeps turns in the chat_history table, one row per turn.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHistoryRepository constructs the PostgreSQL [HistoryRepository].
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *historyRepository) AppendTurns(ctx context.Context, userID int64, turns ...models.ConversationTurn) error {
	log := logger.FromContext(ctx)

	rows := make([]historyRow, 0, len(turns))
	for _, t := range turns {
		if !t.IsRenderable() {
			continue
		}
		rows = append(rows, historyRow{role: string(t.Role), text: t.Text()})
	}
	if len(rows) == 0 {
		return nil
	}

	query, args, err := buildAppendHistoryQuery(userID, rows)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*historyRepository.AppendTurns").
			Int64("user_id", userID).
			Msg("failed to insert history")
		return fmt.Errorf("%w: append history: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *historyRepository) RecentTurns(ctx context.Context, userID int64, limit int) ([]models.ConversationTurn, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return []models.ConversationTurn{}, nil
	}

	query, args, err := buildRecentHistoryQuery(userID, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*historyRepository.RecentTurns").
			Int64("user_id", userID).
			Msg("failed to query history")
		return nil, fmt.Errorf("%w: recent history: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	turns := make([]models.ConversationTurn, 0, limit)
	for rows.Next() {
		var (
			rec  models.HistoryRecord
			role string
			text string
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &role, &text, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rec.Turn = models.NewTurn(models.Role(role), text)
		turns = append(turns, rec.Turn)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	slices.Reverse(turns)
	return turns, nil
}
