package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateQuestionsTable, downCreateQuestionsTable)
}

func upCreateQuestionsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
		CREATE TABLE questions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			session_id UUID NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			question TEXT NOT NULL,
			answer TEXT NOT NULL DEFAULT '',
			note TEXT NOT NULL DEFAULT '',
			is_pinned BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
		);

		CREATE INDEX idx_questions_session_id ON questions(session_id);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateQuestionsTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS questions;`
	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}
