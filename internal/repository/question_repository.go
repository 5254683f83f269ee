package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"interview-prep-service/internal/model"
)

type QuestionRepository interface {
	InsertBatch(ctx context.Context, sessionID uuid.UUID, questions []model.QuestionAnswer) ([]model.Question, error)
	ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.Question, error)
	FindByID(ctx context.Context, questionID uuid.UUID) (*model.Question, error)
	TogglePin(ctx context.Context, questionID uuid.UUID) (*model.Question, error)
	UpdateNote(ctx context.Context, questionID uuid.UUID, note string) (*model.Question, error)
}

type postgresQuestionRepository struct {
	db *sqlx.DB
}

func NewPostgresQuestionRepository(db *sqlx.DB) QuestionRepository {
	return &postgresQuestionRepository{db: db}
}

func (r *postgresQuestionRepository) InsertBatch(ctx context.Context, sessionID uuid.UUID, questions []model.QuestionAnswer) ([]model.Question, error) {
	query := `
		INSERT INTO questions (session_id, question, answer)
		VALUES ($1, $2, $3)
		RETURNING id, session_id, question, answer, note, is_pinned, created_at, updated_at
	`

	inserted := make([]model.Question, 0, len(questions))
	for _, qa := range questions {
		var q model.Question
		err := r.db.QueryRowxContext(ctx, query, sessionID, qa.Question, qa.Answer).StructScan(&q)

		if err != nil {
			return nil, err
		}

		inserted = append(inserted, q)
	}

	return inserted, nil
}

// ListBySessionID returns a session's questions pinned-first, newest-first.
func (r *postgresQuestionRepository) ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.Question, error) {
	var questions []model.Question
	query := `
		SELECT id, session_id, question, answer, note, is_pinned, created_at, updated_at
		FROM questions
		WHERE session_id = $1
		ORDER BY is_pinned DESC, created_at DESC
	`
	err := r.db.SelectContext(ctx, &questions, query, sessionID)
	if err != nil {
		return nil, err
	}

	if questions == nil {
		questions = []model.Question{}
	}

	return questions, nil
}

func (r *postgresQuestionRepository) FindByID(ctx context.Context, questionID uuid.UUID) (*model.Question, error) {
	var question model.Question
	query := `SELECT id, session_id, question, answer, note, is_pinned, created_at, updated_at FROM questions WHERE id = $1`
	err := r.db.GetContext(ctx, &question, query, questionID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &question, nil
}

func (r *postgresQuestionRepository) TogglePin(ctx context.Context, questionID uuid.UUID) (*model.Question, error) {
	var question model.Question
	query := `
		UPDATE questions
		SET is_pinned = NOT is_pinned, updated_at = now()
		WHERE id = $1
		RETURNING id, session_id, question, answer, note, is_pinned, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, questionID).StructScan(&question)

	if err != nil {
		return nil, err
	}

	return &question, nil
}

func (r *postgresQuestionRepository) UpdateNote(ctx context.Context, questionID uuid.UUID, note string) (*model.Question, error) {
	var question model.Question
	query := `
		UPDATE questions
		SET note = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, session_id, question, answer, note, is_pinned, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query, questionID, note).StructScan(&question)

	if err != nil {
		return nil, err
	}

	return &question, nil
}
