package service

import (
	"context"
	"errors"

	"interview-prep-service/internal/model"
	"interview-prep-service/internal/repository"

	"github.com/google/uuid"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionService interface {
	AddQuestionsToSession(ctx context.Context, sessionID, userID uuid.UUID, questions []model.QuestionAnswer) ([]model.Question, error)
	TogglePin(ctx context.Context, questionID, userID uuid.UUID) (*model.Question, error)
	UpdateNote(ctx context.Context, questionID, userID uuid.UUID, note string) (*model.Question, error)
}

type questionService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(sessionRepo repository.SessionRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{sessionRepo: sessionRepo, questionRepo: questionRepo}
}

func (s *questionService) AddQuestionsToSession(ctx context.Context, sessionID, userID uuid.UUID, questions []model.QuestionAnswer) ([]model.Question, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.UserID != userID {
		return nil, ErrNotSessionOwner
	}

	return s.questionRepo.InsertBatch(ctx, sessionID, questions)
}

// ownedQuestion resolves a question and checks, through its session, that it
// belongs to the calling user.
func (s *questionService) ownedQuestion(ctx context.Context, questionID, userID uuid.UUID) (*model.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if question == nil {
		return nil, ErrQuestionNotFound
	}

	session, err := s.sessionRepo.FindByID(ctx, question.SessionID)
	if err != nil {
		return nil, err
	}

	if session == nil || session.UserID != userID {
		return nil, ErrNotSessionOwner
	}

	return question, nil
}

func (s *questionService) TogglePin(ctx context.Context, questionID, userID uuid.UUID) (*model.Question, error) {
	if _, err := s.ownedQuestion(ctx, questionID, userID); err != nil {
		return nil, err
	}

	return s.questionRepo.TogglePin(ctx, questionID)
}

func (s *questionService) UpdateNote(ctx context.Context, questionID, userID uuid.UUID, note string) (*model.Question, error) {
	if _, err := s.ownedQuestion(ctx, questionID, userID); err != nil {
		return nil, err
	}

	return s.questionRepo.UpdateNote(ctx, questionID, note)
}
