package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// UserHandler maneja la administración de cuentas (protegido, solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.GetUsers(c.UserContext())
	if err != nil {
		return internalError(c)
	}
	return c.JSON(users)
}

// Create godoc
// @Summary      Crear usuario con rol explícito (aprovisionamiento admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "username, password, role [1,5]"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.AddUserWithRole(c.UserContext(), in.Username, in.Password, in.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_TAKEN", Message: "el username ya está registrado"})
		}
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Delete godoc
// @Summary      Eliminar usuario por username exacto
// @Tags         users
// @Security     Bearer
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{username} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.uc.RemoveUser(c.UserContext(), username); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetRole godoc
// @Summary      Consultar el rol de un usuario (-1 si es desconocido)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  map[string]int
// @Router       /api/users/{username}/role [get]
func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	role := h.uc.GetUserRole(c.UserContext(), c.Params("username"))
	return c.JSON(fiber.Map{"role": role})
}

// GetLocked godoc
// @Summary      Consultar si una cuenta está bloqueada
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {object}  map[string]bool
// @Router       /api/users/{username}/locked [get]
func (h *UserHandler) GetLocked(c *fiber.Ctx) error {
	locked := h.uc.IsAccountLocked(c.UserContext(), c.Params("username"))
	return c.JSON(fiber.Map{"locked": locked})
}
