package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/validate"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// UserUseCase reglas de negocio para cuentas: altas (self-service y admin),
// bajas y las lecturas con política de degradación explícita.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher password.Hasher
	log    *logger.Logger
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, hasher password.Hasher, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher, log: log}
}

// AddUser registro self-service: normaliza el username (trim + minúsculas),
// valida, verifica duplicado y persiste con rol por defecto, contador en cero
// y cuenta desbloqueada.
func (uc *UserUseCase) AddUser(ctx context.Context, username, pass string) (*dto.UserResponse, error) {
	norm := strings.ToLower(strings.TrimSpace(username))
	if err := validate.NonEmpty(norm, "username"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(pass, "password"); err != nil {
		return nil, err
	}
	if err := validate.MaxBytes(pass, password.MaxLength, "password"); err != nil {
		return nil, err
	}
	if uc.IsUsernameTaken(ctx, norm) {
		return nil, domain.ErrDuplicateUsername
	}
	user := &entity.User{
		Username:       norm,
		PasswordHash:   uc.hasher.Hash(pass),
		Role:           entity.RoleClient,
		Locked:         false,
		FailedAttempts: 0,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// AddUserWithRole alta con rol explícito en [1,5], pensada para
// aprovisionamiento admin. No normaliza el username ni hace pre-chequeo de
// duplicado (el índice único del store sigue aplicando); ver DESIGN.md sobre
// esta asimetría heredada.
func (uc *UserUseCase) AddUserWithRole(ctx context.Context, username, pass string, role int) (*dto.UserResponse, error) {
	if err := validate.NonEmpty(username, "username"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(pass, "password"); err != nil {
		return nil, err
	}
	if err := validate.MaxBytes(pass, password.MaxLength, "password"); err != nil {
		return nil, err
	}
	if !entity.RoleValid(role) {
		return nil, fmt.Errorf("%w: rol %d fuera de rango [1,5]", domain.ErrInvalidInput, role)
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: uc.hasher.Hash(pass),
		Role:         role,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// RemoveUser borra a lo sumo una fila con el username exacto recibido (sin
// normalizar); cero coincidencias no es error.
func (uc *UserUseCase) RemoveUser(ctx context.Context, username string) error {
	if err := validate.NonEmpty(username, "username"); err != nil {
		return err
	}
	return uc.repo.DeleteByUsername(ctx, username)
}

// IsUsernameTaken chequeo de existencia. Ante una falla del store responde
// true: mejor rechazar un alta que permitir un duplicado accidental
// (fail closed, asimétrico respecto a IsAccountLocked).
func (uc *UserUseCase) IsUsernameTaken(ctx context.Context, username string) bool {
	if strings.TrimSpace(username) == "" {
		return false
	}
	taken, err := uc.repo.Exists(ctx, username)
	if err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("chequeo de username degradado a ocupado")
		return true
	}
	return taken
}

// GetUsers lista todos los usuarios; slice vacío si no hay filas.
func (uc *UserUseCase) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetUserRole devuelve el rol almacenado, o -1 si el usuario no existe o el
// store falla. Los callers tratan -1 como "no se puede autorizar", nunca como
// un rol válido.
func (uc *UserUseCase) GetUserRole(ctx context.Context, username string) int {
	if strings.TrimSpace(username) == "" {
		return -1
	}
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("lectura de rol degradada a desconocido")
		return -1
	}
	if user == nil {
		return -1
	}
	return user.Role
}

// IsAccountLocked true solo si existe una fila con locked=1. Sin coincidencia
// o ante falla del store responde false (fail open para esta lectura; política
// documentada, no divergencia accidental).
func (uc *UserUseCase) IsAccountLocked(ctx context.Context, username string) bool {
	if strings.TrimSpace(username) == "" {
		return false
	}
	user, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("chequeo de bloqueo degradado a desbloqueado")
		return false
	}
	if user == nil {
		return false
	}
	return user.Locked
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Locked:   u.Locked,
	}
}
