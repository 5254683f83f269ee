package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SessionID uuid.UUID `db:"session_id" json:"sessionId"`
	Question  string    `db:"question" json:"question"`
	Answer    string    `db:"answer" json:"answer"`
	Note      string    `db:"note" json:"note,omitempty"`
	IsPinned  bool      `db:"is_pinned" json:"isPinned"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// QuestionAnswer is one question/answer pair as produced by the AI provider
// and as accepted in session-create and question-add payloads.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ConceptExplanation is the shape the AI provider is prompted to return for
// a single-question explanation.
type ConceptExplanation struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}
