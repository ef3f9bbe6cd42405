package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// LogsHandler maneja la bitácora de auditoría (protegido).
type LogsHandler struct {
	uc *usecase.LogUseCase
}

// NewLogsHandler construye el handler.
func NewLogsHandler(uc *usecase.LogUseCase) *LogsHandler {
	return &LogsHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un evento de auditoría
// @Tags         logs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLogRequest  true  "event, username, desc, timestamp"
// @Success      201   {object}  dto.LogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/logs [post]
func (h *LogsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLogRequest
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
// @Summary      Listar bitácora
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LogResponse
// @Router       /api/logs [get]
func (h *LogsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(out)
}
