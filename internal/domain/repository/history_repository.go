package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// HistoryRepository define el puerto de persistencia para History (DIP).
type HistoryRepository interface {
	Create(ctx context.Context, history *entity.History) error
	List(ctx context.Context) ([]*entity.History, error)
}
