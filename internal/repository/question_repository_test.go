package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"interview-prep-service/internal/model"
	repo "interview-prep-service/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestPostgresQuestionRepository_InsertBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresQuestionRepository(sqlxDB)

	sessionID := uuid.New()
	now := time.Now()

	for _, q := range []string{"Q1", "Q2"} {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO questions`)).
			WithArgs(sessionID, q, "A").
			WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "question", "answer", "note", "is_pinned", "created_at", "updated_at"}).
				AddRow(uuid.New(), sessionID, q, "A", "", false, now, now))
	}

	inserted, err := r.InsertBatch(context.Background(), sessionID, []model.QuestionAnswer{
		{Question: "Q1", Answer: "A"},
		{Question: "Q2", Answer: "A"},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQuestionRepository_ListBySessionID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresQuestionRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY is_pinned DESC, created_at DESC`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "question", "answer", "note", "is_pinned", "created_at", "updated_at"}))

	questions, err := r.ListBySessionID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, questions)
	require.Empty(t, questions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQuestionRepository_TogglePin(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresQuestionRepository(sqlxDB)

	questionID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SET is_pinned = NOT is_pinned`)).
		WithArgs(questionID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "question", "answer", "note", "is_pinned", "created_at", "updated_at"}).
			AddRow(questionID, uuid.New(), "Q", "A", "", true, now, now))

	q, err := r.TogglePin(context.Background(), questionID)
	require.NoError(t, err)
	require.True(t, q.IsPinned)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresQuestionRepository_UpdateNote(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresQuestionRepository(sqlxDB)

	questionID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SET note = $2`)).
		WithArgs(questionID, "remember this one").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "question", "answer", "note", "is_pinned", "created_at", "updated_at"}).
			AddRow(questionID, uuid.New(), "Q", "A", "remember this one", false, now, now))

	q, err := r.UpdateNote(context.Background(), questionID, "remember this one")
	require.NoError(t, err)
	require.Equal(t, "remember this one", q.Note)
	require.NoError(t, mock.ExpectationsWereMet())
}
