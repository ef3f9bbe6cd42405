package auth

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/validate"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase motor de autenticación y bloqueo. Máquina de estados por usuario:
// Active(failed_attempts) -> Locked al alcanzar el umbral; ninguna transición
// sale de Locked dentro de este núcleo.
type UseCase struct {
	userRepo repository.UserRepository
	hasher   password.Hasher
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el motor de autenticación.
func NewUseCase(userRepo repository.UserRepository, hasher password.Hasher, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, hasher: hasher, jwtCfg: jwtCfg, log: log}
}

// Authenticate valida credenciales y aplica la política de bloqueo.
//
// Devuelve false tanto para "usuario inexistente" como para "password
// incorrecto": la forma de la respuesta no permite enumerar usernames
// (decisión deliberada; no agregar un error que los distinga). Una falla del
// store en la lectura degrada a false; una falla en la escritura del contador
// sí surge como error.
func (uc *UseCase) Authenticate(ctx context.Context, username, pass string) (bool, error) {
	if err := validate.NonEmpty(username, "username"); err != nil {
		return false, err
	}
	if err := validate.NonEmpty(pass, "password"); err != nil {
		return false, err
	}

	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		uc.log.Warn().Err(err).Msg("lectura de usuario degradada en authenticate")
		return false, nil
	}
	if user == nil {
		return false, nil
	}
	// Cuenta bloqueada: sin verificación y sin mutación.
	if user.Locked {
		return false, nil
	}

	if uc.hasher.Verify(pass, user.PasswordHash) {
		// Un update de una sola sentencia: el reset no puede pisar un
		// incremento concurrente a medias.
		if err := uc.userRepo.ResetFailedAttempts(ctx, username); err != nil {
			return false, err
		}
		return true, nil
	}

	// Incremento y bloqueo condicional en una sola sentencia; los intentos
	// fallidos concurrentes componen sin saltarse el umbral.
	if err := uc.userRepo.RegisterFailedAttempt(ctx, username, entity.MaxFailedAttempts); err != nil {
		return false, err
	}
	return false, nil
}

// Login autentica y, si las credenciales son válidas, emite un JWT con el rol
// del usuario. Credenciales inválidas y cuenta bloqueada responden el mismo
// ErrUnauthorized genérico.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	ok, err := uc.Authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
			Locked:   user.Locked,
		},
	}, nil
}
