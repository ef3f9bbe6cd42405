package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/validate"
)

// ProductUseCase reglas de negocio para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Add valida y persiste un producto nuevo. Un nombre repetido surge del store
// como domain.ErrDuplicate; la validación falla antes de tocar la persistencia.
func (uc *ProductUseCase) Add(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validate.NonEmpty(in.Name, "name"); err != nil {
		return nil, err
	}
	if err := validate.NonNegativeInt(in.Stock, "stock"); err != nil {
		return nil, err
	}
	if err := validate.NonNegativeDecimal(in.Price, "price"); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:  in.Name,
		Stock: in.Stock,
		Price: in.Price,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByName obtiene un producto por nombre; (nil, nil) si no existe, en lugar
// de un registro centinela.
func (uc *ProductUseCase) GetByName(ctx context.Context, name string) (*dto.ProductResponse, error) {
	if err := validate.NonEmpty(name, "name"); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos; slice vacío si no hay filas.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Stock: p.Stock,
		Price: p.Price,
	}
}
