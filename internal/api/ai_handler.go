package api

import (
	"errors"
	"log/slog"

	"interview-prep-service/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	aiService service.AIService
	validate  *validator.Validate
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
		validate:  validator.New(),
	}
}

type GenerateQuestionsRequest struct {
	Role              string `json:"role" validate:"required"`
	Experience        string `json:"experience" validate:"required"`
	TopicsToFocus     string `json:"topicsToFocus" validate:"required"`
	NumberOfQuestions int    `json:"numberOfQuestions" validate:"required,min=1,max=50"`
}

type GenerateExplanationRequest struct {
	Question string `json:"question" validate:"required"`
}

func (h *AIHandler) GenerateQuestions(c *fiber.Ctx) error {
	var request GenerateQuestionsRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields", "details": err.Error()})
	}

	questions, err := h.aiService.GenerateQuestions(c.Context(), request.Role, request.Experience, request.TopicsToFocus, request.NumberOfQuestions)

	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAIJSON):
			slog.ErrorContext(c.UserContext(), "AI reply was not valid JSON")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Invalid JSON from AI"})
		case errors.Is(err, service.ErrMalformedQuestions):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Questions not generated properly."})
		default:
			slog.ErrorContext(c.UserContext(), "Failed to generate questions", slog.String("error", err.Error()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate questions", "error": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"questions": questions})
}

func (h *AIHandler) GenerateExplanation(c *fiber.Ctx) error {
	var request GenerateExplanationRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Required field is missing", "details": err.Error()})
	}

	explanation, err := h.aiService.ExplainConcept(c.Context(), request.Question)

	if err != nil {
		slog.ErrorContext(c.UserContext(), "Failed to generate explanation", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate explanation", "error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(explanation)
}
