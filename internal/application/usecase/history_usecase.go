package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/validate"
)

// HistoryUseCase reglas de negocio para el historial de cambios de stock.
// No acopla el alta del historial con la mutación del stock del producto:
// esa consistencia, si se necesita, es responsabilidad del caller.
type HistoryUseCase struct {
	repo repository.HistoryRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.HistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// Add valida y persiste un registro del historial.
func (uc *HistoryUseCase) Add(ctx context.Context, in dto.CreateHistoryRequest) (*dto.HistoryResponse, error) {
	if err := validate.NonEmpty(in.Username, "username"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(in.Name, "name"); err != nil {
		return nil, err
	}
	if err := validate.NonNegativeInt(in.Stock, "stock"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(in.Timestamp, "timestamp"); err != nil {
		return nil, err
	}
	h := &entity.History{
		Username:  in.Username,
		Name:      in.Name,
		Stock:     in.Stock,
		Timestamp: in.Timestamp,
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return toHistoryResponse(h), nil
}

// List devuelve todo el historial; slice vacío si no hay filas.
func (uc *HistoryUseCase) List(ctx context.Context) ([]dto.HistoryResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryResponse, 0, len(items))
	for _, h := range items {
		out = append(out, *toHistoryResponse(h))
	}
	return out, nil
}

func toHistoryResponse(h *entity.History) *dto.HistoryResponse {
	if h == nil {
		return nil
	}
	return &dto.HistoryResponse{
		ID:        h.ID,
		Username:  h.Username,
		Name:      h.Name,
		Stock:     h.Stock,
		Timestamp: h.Timestamp,
	}
}
