package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/antoniotech/pos-api/internal/application/dto"
	"github.com/antoniotech/pos-api/internal/application/usecase"
)

// AIHandler maneja el buzón de preguntas de negocio al asistente IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Ask responde una pregunta en lenguaje natural. Nunca devuelve un error del
// proveedor: cualquier fallo llega como el mensaje fijo de respaldo dentro de
// una respuesta 200.
func (h *AIHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question es requerida"})
	}
	answer := h.uc.Ask(c.Context(), question)
	return c.JSON(dto.AskResponse{Answer: answer})
}
