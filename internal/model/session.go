package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID            uuid.UUID `db:"id" json:"id"`
	UserID        uuid.UUID `db:"user_id" json:"userId"`
	Role          string    `db:"role" json:"role"`
	Experience    string    `db:"experience" json:"experience"`
	TopicsToFocus string    `db:"topics_to_focus" json:"topicsToFocus"`
	Description   string    `db:"description" json:"description,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`

	// Populated from the questions table, never scanned directly.
	Questions []Question `db:"-" json:"questions"`
}
