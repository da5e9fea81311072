package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistoryRepo(t *testing.T) (*historyRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return &historyRepository{db: &DB{DB: db, logger: l}, logger: l}, mock
}

func TestAppendTurns_InsertsRenderableTurns(t *testing.T) {
	repo, mock := newTestHistoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chat_history (user_id,role,text) VALUES ($1,$2,$3),($4,$5,$6)")).
		WithArgs(int64(5), "user", "question", int64(5), "model", "answer").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.AppendTurns(context.Background(), 5,
		models.NewTurn(models.RoleUser, "question"),
		models.ConversationTurn{Role: models.RoleModel},
		models.NewTurn(models.RoleModel, "answer"),
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendTurns_NothingToInsert(t *testing.T) {
	repo, mock := newTestHistoryRepo(t)

	require.NoError(t, repo.AppendTurns(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendTurns_ExecError(t *testing.T) {
	repo, mock := newTestHistoryRepo(t)
	mock.ExpectExec("INSERT INTO chat_history").WillReturnError(errors.New("boom"))

	err := repo.AppendTurns(context.Background(), 5, models.NewTurn(models.RoleUser, "q"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestRecentTurns_ChronologicalOrder(t *testing.T) {
	repo, mock := newTestHistoryRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "role", "text", "created_at"}).
		AddRow(int64(4), int64(5), "model", "a2", now).
		AddRow(int64(3), int64(5), "user", "q2", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM chat_history WHERE user_id = $1 ORDER BY id DESC LIMIT 2")).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	turns, err := repo.RecentTurns(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []models.ConversationTurn{
		models.NewTurn(models.RoleUser, "q2"),
		models.NewTurn(models.RoleModel, "a2"),
	}, turns)
}

func TestRecentTurns_ZeroLimit(t *testing.T) {
	repo, mock := newTestHistoryRepo(t)

	turns, err := repo.RecentTurns(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.Empty(t, turns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentTurns_QueryError(t *testing.T) {
	repo, mock := newTestHistoryRepo(t)
	mock.ExpectQuery("FROM chat_history").WillReturnError(errors.New("boom"))

	_, err := repo.RecentTurns(context.Background(), 5, 3)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
