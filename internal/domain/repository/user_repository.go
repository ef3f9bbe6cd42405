package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila; las políticas de
// degradación ante fallas (fail open/closed) viven en la capa de aplicación.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]*entity.User, error)
	// DeleteByUsername borra a lo sumo una fila con coincidencia exacta;
	// cero filas no es error.
	DeleteByUsername(ctx context.Context, username string) error
	// ResetFailedAttempts pone failed_attempts en 0 con una sola sentencia.
	ResetFailedAttempts(ctx context.Context, username string) error
	// RegisterFailedAttempt incrementa failed_attempts y bloquea la cuenta si
	// el valor post-incremento alcanza el umbral, todo en una sola sentencia
	// condicional (los intentos concurrentes componen sin updates perdidos).
	RegisterFailedAttempt(ctx context.Context, username string, threshold int) error
}
