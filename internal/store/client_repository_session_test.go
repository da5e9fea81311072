package store

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func newTestSessionRepo(t *testing.T) (*localSessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &localSessionRepository{
		DB:     &DB{DB: db, logger: logger.Nop()},
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func sessionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"token", "user_id", "user_data", "saved_at"})
}

// ── SaveSession ───────────────────────────────────────────────────────────────

func TestSaveSession_Upsert(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session")).
		WithArgs(sessionRowID, "t", "1", `{"username":"u","chatHistory":[]}`, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSession(context.Background(), models.Session{
		Token:   "t",
		UserID:  "1",
		Profile: models.NewUserProfile("u"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO session").WillReturnError(errors.New("disk full"))

	err := repo.SaveSession(context.Background(), models.Session{Token: "t", Profile: models.NewUserProfile("u")})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── LoadSession ───────────────────────────────────────────────────────────────

func TestLoadSession(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
		want    models.Session
	}{
		{
			name: "complete row",
			rows: sessionRows().AddRow("t", "1", `{"username":"u","chatHistory":[]}`, fixedNow),
			want: models.Session{Token: "t", UserID: "1", Profile: models.NewUserProfile("u"), SavedAt: fixedNow},
		},
		{
			name: "missing chat history is normalised",
			rows: sessionRows().AddRow("t", "1", `{"username":"u"}`, fixedNow),
			want: models.Session{Token: "t", UserID: "1", Profile: models.NewUserProfile("u"), SavedAt: fixedNow},
		},
		{name: "no row", rows: sessionRows(), wantErr: ErrSessionNotFound},
		{name: "token only", rows: sessionRows().AddRow("t", "1", "", fixedNow), wantErr: ErrSessionIncomplete},
		{name: "user data only", rows: sessionRows().AddRow("", "1", `{"username":"u"}`, fixedNow), wantErr: ErrSessionIncomplete},
		{name: "malformed user data", rows: sessionRows().AddRow("t", "1", `{"username":`, fixedNow), wantErr: ErrSessionIncomplete},
		{name: "profile without username", rows: sessionRows().AddRow("t", "1", `{}`, fixedNow), wantErr: ErrSessionIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestSessionRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT token, user_id, user_data, saved_at FROM session WHERE id = ?")).
				WithArgs(sessionRowID).
				WillReturnRows(tt.rows)

			got, err := repo.LoadSession(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.Session{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSession_QueryError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("io"))

	_, err := repo.LoadSession(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── DeleteSession ─────────────────────────────────────────────────────────────

func TestDeleteSession(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session WHERE id = ?")).
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteSession(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession_ExecError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)
	mock.ExpectExec("DELETE").WillReturnError(errors.New("locked"))

	assert.ErrorIs(t, repo.DeleteSession(context.Background()), ErrExecutingStatement)
}

// ── SQLite round trip ─────────────────────────────────────────────────────────

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "code-tutor.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	repo := storages.SessionRepository

	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	first := models.Session{Token: "t1", UserID: "1", Profile: models.NewUserProfile("u")}
	require.NoError(t, repo.SaveSession(ctx, first))

	second := models.Session{Token: "t2", UserID: "2", Profile: models.NewUserProfile("v")}
	require.NoError(t, repo.SaveSession(ctx, second))

	got, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", got.Token)
	assert.Equal(t, "2", got.UserID)
	assert.Equal(t, models.NewUserProfile("v"), got.Profile)

	require.NoError(t, repo.DeleteSession(ctx))
	require.NoError(t, repo.DeleteSession(ctx))

	_, err = repo.LoadSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
