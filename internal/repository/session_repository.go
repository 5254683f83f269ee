package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"interview-prep-service/internal/model"
)

type SessionRepository interface {
	CreateWithQuestions(ctx context.Context, session *model.Session, questions []model.QuestionAnswer) (*model.Session, error)
	FindByID(ctx context.Context, sessionID uuid.UUID) (*model.Session, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Session, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type postgresSessionRepository struct {
	db *sqlx.DB
}

func NewPostgresSessionRepository(db *sqlx.DB) SessionRepository {
	return &postgresSessionRepository{db: db}
}

// CreateWithQuestions inserts the session row and all of its question rows in
// one transaction, so a failed question insert never leaves an orphaned
// half-populated session behind.
func (r *postgresSessionRepository) CreateWithQuestions(ctx context.Context, session *model.Session, questions []model.QuestionAnswer) (*model.Session, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	sessionQuery := `
		INSERT INTO sessions (user_id, role, experience, topics_to_focus, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	row := tx.QueryRowxContext(ctx, sessionQuery, session.UserID, session.Role, session.Experience, session.TopicsToFocus, session.Description)
	err = row.Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		return nil, err
	}

	questionQuery := `
		INSERT INTO questions (session_id, question, answer)
		VALUES ($1, $2, $3)
		RETURNING id, session_id, question, answer, note, is_pinned, created_at, updated_at
	`

	session.Questions = make([]model.Question, 0, len(questions))
	for _, qa := range questions {
		var q model.Question
		err = tx.QueryRowxContext(ctx, questionQuery, session.ID, qa.Question, qa.Answer).StructScan(&q)

		if err != nil {
			return nil, err
		}

		session.Questions = append(session.Questions, q)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return session, nil
}

func (r *postgresSessionRepository) FindByID(ctx context.Context, sessionID uuid.UUID) (*model.Session, error) {
	var session model.Session
	query := `SELECT id, user_id, role, experience, topics_to_focus, description, created_at, updated_at FROM sessions WHERE id = $1`
	err := r.db.GetContext(ctx, &session, query, sessionID)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &session, nil
}

func (r *postgresSessionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	var sessions []model.Session
	query := `
		SELECT id, user_id, role, experience, topics_to_focus, description, created_at, updated_at
		FROM sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &sessions, query, userID)
	if err != nil {
		return nil, err
	}

	if sessions == nil {
		sessions = []model.Session{}
	}

	return sessions, nil
}

// Delete removes the session's questions and then the session itself, in one
// transaction. The schema also cascades, but deleting explicitly keeps the
// two statements visible and testable.
func (r *postgresSessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE session_id = $1`, sessionID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, sessionID); err != nil {
		return err
	}

	return tx.Commit()
}
