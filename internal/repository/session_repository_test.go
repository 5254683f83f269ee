package repository_test

import (
	"context"
	"database/sql"
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

func TestPostgresSessionRepository_CreateWithQuestions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSessionRepository(sqlxDB)

	sessionID := uuid.New()
	questionID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO sessions (user_id, role, experience, topics_to_focus, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`)).WithArgs(sqlmock.AnyArg(), "Backend Developer", "3", "Go, SQL", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(sessionID, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO questions (session_id, question, answer)
		VALUES ($1, $2, $3)
		RETURNING id, session_id, question, answer, note, is_pinned, created_at, updated_at
	`)).WithArgs(sessionID, "Q1", "A1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "question", "answer", "note", "is_pinned", "created_at", "updated_at"}).
			AddRow(questionID, sessionID, "Q1", "A1", "", false, now, now))
	mock.ExpectCommit()

	sess := &model.Session{UserID: uuid.New(), Role: "Backend Developer", Experience: "3", TopicsToFocus: "Go, SQL"}
	created, err := r.CreateWithQuestions(context.Background(), sess, []model.QuestionAnswer{{Question: "Q1", Answer: "A1"}})
	require.NoError(t, err)
	require.Equal(t, sessionID, created.ID)
	require.Len(t, created.Questions, 1)
	require.Equal(t, "Q1", created.Questions[0].Question)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_CreateWithQuestions_QuestionInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSessionRepository(sqlxDB)

	sessionID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sessions`)).
		WithArgs(sqlmock.AnyArg(), "Backend Developer", "3", "Go", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(sessionID, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO questions`)).
		WithArgs(sessionID, "Q1", "A1").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	sess := &model.Session{UserID: uuid.New(), Role: "Backend Developer", Experience: "3", TopicsToFocus: "Go"}
	_, err = r.CreateWithQuestions(context.Background(), sess, []model.QuestionAnswer{{Question: "Q1", Answer: "A1"}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_FindByID_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSessionRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, role, experience, topics_to_focus, description, created_at, updated_at FROM sessions WHERE id = $1`)).
		WithArgs(sqlmock.AnyArg()).WillReturnError(sql.ErrNoRows)

	s, err := r.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, s)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_ListByUserID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSessionRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "role", "experience", "topics_to_focus", "description", "created_at", "updated_at"}))

	sessions, err := r.ListByUserID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, sessions)
	require.Empty(t, sessions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSessionRepository_Delete_RemovesQuestionsFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewPostgresSessionRepository(sqlxDB)

	sessionID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM questions WHERE session_id = $1`)).
		WithArgs(sessionID).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM sessions WHERE id = $1`)).
		WithArgs(sessionID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.Delete(context.Background(), sessionID))
	require.NoError(t, mock.ExpectationsWereMet())
}
