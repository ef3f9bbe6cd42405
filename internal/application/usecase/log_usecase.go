package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/validate"
)

// LogUseCase reglas de negocio para la bitácora de auditoría.
type LogUseCase struct {
	repo repository.LogRepository
}

// NewLogUseCase construye el caso de uso.
func NewLogUseCase(repo repository.LogRepository) *LogUseCase {
	return &LogUseCase{repo: repo}
}

// Add valida y persiste una entrada de la bitácora.
func (uc *LogUseCase) Add(ctx context.Context, in dto.CreateLogRequest) (*dto.LogResponse, error) {
	if err := validate.NonEmpty(in.Event, "event"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(in.Username, "username"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(in.Desc, "desc"); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty(in.Timestamp, "timestamp"); err != nil {
		return nil, err
	}
	l := &entity.Log{
		Event:     in.Event,
		Username:  in.Username,
		Desc:      in.Desc,
		Timestamp: in.Timestamp,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLogResponse(l), nil
}

// List devuelve toda la bitácora; slice vacío si no hay filas.
func (uc *LogUseCase) List(ctx context.Context) ([]dto.LogResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogResponse, 0, len(items))
	for _, l := range items {
		out = append(out, *toLogResponse(l))
	}
	return out, nil
}

func toLogResponse(l *entity.Log) *dto.LogResponse {
	if l == nil {
		return nil
	}
	return &dto.LogResponse{
		ID:        l.ID,
		Event:     l.Event,
		Username:  l.Username,
		Desc:      l.Desc,
		Timestamp: l.Timestamp,
	}
}
