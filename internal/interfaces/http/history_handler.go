package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// HistoryHandler maneja el historial de cambios de stock (protegido).
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un cambio de stock
// @Tags         history
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHistoryRequest  true  "username, name, stock, timestamp"
// @Success      201   {object}  dto.HistoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/history [post]
func (h *HistoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar historial
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HistoryResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}
