package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// LogRepository define el puerto de persistencia para la bitácora (DIP).
type LogRepository interface {
	Create(ctx context.Context, log *entity.Log) error
	List(ctx context.Context) ([]*entity.Log, error)
}
