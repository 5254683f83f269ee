package api

import (
	"errors"

	"interview-prep-service/internal/model"
	"interview-prep-service/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type QuestionHandler struct {
	questionService service.QuestionService
	validate        *validator.Validate
}

func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		validate:        validator.New(),
	}
}

type AddQuestionsRequest struct {
	SessionID uuid.UUID              `json:"sessionId" validate:"required"`
	Questions []model.QuestionAnswer `json:"questions" validate:"required,min=1,dive"`
}

type UpdateNoteRequest struct {
	Note string `json:"note" validate:"max=1000"`
}

func (h *QuestionHandler) AddQuestionsToSession(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)

	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request AddQuestionsRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	questions, err := h.questionService.AddQuestionsToSession(c.Context(), request.SessionID, userID, request.Questions)

	if err != nil {
		return questionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(questions)
}

func (h *QuestionHandler) TogglePin(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID format"})
	}

	userID, err := GetUserIDFromClaims(c)

	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	question, err := h.questionService.TogglePin(c.Context(), questionID, userID)

	if err != nil {
		return questionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(question)
}

func (h *QuestionHandler) UpdateNote(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID format"})
	}

	userID, err := GetUserIDFromClaims(c)

	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request UpdateNoteRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	question, err := h.questionService.UpdateNote(c.Context(), questionID, userID, request.Note)

	if err != nil {
		return questionErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(question)
}

func questionErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	case errors.Is(err, service.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	case errors.Is(err, service.ErrNotSessionOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
