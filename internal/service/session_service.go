package service

import (
	"context"
	"errors"

	"interview-prep-service/internal/model"
	"interview-prep-service/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotSessionOwner = errors.New("session does not belong to this user")
)

type SessionService interface {
	CreateSession(ctx context.Context, session *model.Session, questions []model.QuestionAnswer) (*model.Session, error)
	ListMySessions(ctx context.Context, userID uuid.UUID) ([]model.Session, error)
	GetSession(ctx context.Context, sessionID, userID uuid.UUID) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID, userID uuid.UUID) error
}

type sessionService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
}

func NewSessionService(sessionRepo repository.SessionRepository, questionRepo repository.QuestionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo, questionRepo: questionRepo}
}

func (s *sessionService) CreateSession(ctx context.Context, session *model.Session, questions []model.QuestionAnswer) (*model.Session, error) {
	return s.sessionRepo.CreateWithQuestions(ctx, session, questions)
}

func (s *sessionService) ListMySessions(ctx context.Context, userID uuid.UUID) ([]model.Session, error) {
	sessions, err := s.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		questions, err := s.questionRepo.ListBySessionID(ctx, sessions[i].ID)

		if err != nil {
			return nil, err
		}

		sessions[i].Questions = questions
	}

	return sessions, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID, userID uuid.UUID) (*model.Session, error) {
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

	questions, err := s.questionRepo.ListBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Questions = questions

	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID, userID uuid.UUID) error {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if session == nil {
		return ErrSessionNotFound
	}

	if session.UserID != userID {
		return ErrNotSessionOwner
	}

	return s.sessionRepo.Delete(ctx, sessionID)
}
