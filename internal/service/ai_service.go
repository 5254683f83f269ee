package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"interview-prep-service/internal/ai"
	"interview-prep-service/internal/model"
)

var (
	// ErrInvalidAIJSON means the provider reply was not JSON at all after
	// fence stripping. Surfaced to clients as 500 "Invalid JSON from AI".
	ErrInvalidAIJSON = errors.New("invalid JSON from AI")
	// ErrMalformedQuestions means the reply parsed but was not a non-empty
	// array of question/answer objects.
	ErrMalformedQuestions = errors.New("questions not generated properly")
)

type AIService interface {
	GenerateQuestions(ctx context.Context, role, experience, topicsToFocus string, numberOfQuestions int) ([]model.QuestionAnswer, error)
	ExplainConcept(ctx context.Context, question string) (*model.ConceptExplanation, error)
}

type aiService struct {
	generator ai.TextGenerator
}

func NewAIService(generator ai.TextGenerator) AIService {
	return &aiService{generator: generator}
}

func (s *aiService) GenerateQuestions(ctx context.Context, role, experience, topicsToFocus string, numberOfQuestions int) ([]model.QuestionAnswer, error) {
	prompt := ai.QuestionAnswerPrompt(role, experience, topicsToFocus, numberOfQuestions)

	rawText, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	cleaned := ai.StripCodeFence(rawText)

	var questions []model.QuestionAnswer
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		if !json.Valid([]byte(cleaned)) {
			return nil, ErrInvalidAIJSON
		}
		// Valid JSON, wrong shape (e.g. a single object instead of an array).
		return nil, ErrMalformedQuestions
	}

	if len(questions) == 0 {
		return nil, ErrMalformedQuestions
	}

	return questions, nil
}

func (s *aiService) ExplainConcept(ctx context.Context, question string) (*model.ConceptExplanation, error) {
	prompt := ai.ConceptExplainPrompt(question)

	rawText, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate explanation: %w", err)
	}

	cleaned := ai.StripCodeFence(rawText)

	var explanation model.ConceptExplanation
	if err := json.Unmarshal([]byte(cleaned), &explanation); err != nil {
		return nil, fmt.Errorf("parse explanation: %w", err)
	}

	return &explanation, nil
}
