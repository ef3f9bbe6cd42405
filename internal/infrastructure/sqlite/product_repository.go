package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite.
// Price viaja como decimal en el dominio y se persiste en la columna REAL.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{db: store.DB()}
}

// Create persiste un producto nuevo. El índice único de name surge como
// domain.ErrDuplicate, nunca se ignora en silencio.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `INSERT INTO product (name, stock, price) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Stock, product.Price.InexactFloat64())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert product", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		product.ID = id
	}
	return nil
}

// GetByName obtiene un producto por nombre exacto; (nil, nil) si no existe.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `SELECT id, name, stock, price FROM product WHERE name = ? LIMIT 1`
	var p entity.Product
	var price float64
	err := r.db.QueryRowContext(ctx, query, name).Scan(&p.ID, &p.Name, &p.Stock, &price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get product by name", err)
	}
	p.Price = decimal.NewFromFloat(price)
	return &p, nil
}

// List devuelve todos los productos; slice vacío si no hay filas.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, stock, price FROM product`)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		var price float64
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &price); err != nil {
			return nil, storeErr("scan product", err)
		}
		p.Price = decimal.NewFromFloat(price)
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate products", err)
	}
	return list, nil
}
