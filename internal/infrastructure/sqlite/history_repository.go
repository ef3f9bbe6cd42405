package sqlite

import (
	"context"
	"database/sql"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementación del puerto HistoryRepository sobre SQLite.
type HistoryRepo struct {
	db *sql.DB
}

// NewHistoryRepository construye el adaptador de persistencia para el historial.
func NewHistoryRepository(store *Store) *HistoryRepo {
	return &HistoryRepo{db: store.DB()}
}

// Create persiste un registro de cambio de stock.
func (r *HistoryRepo) Create(ctx context.Context, history *entity.History) error {
	query := `INSERT INTO history (username, name, stock, timestamp) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, history.Username, history.Name, history.Stock, history.Timestamp)
	if err != nil {
		return storeErr("insert history", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		history.ID = id
	}
	return nil
}

// List devuelve todo el historial; slice vacío si no hay filas.
func (r *HistoryRepo) List(ctx context.Context) ([]*entity.History, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, name, stock, timestamp FROM history`)
	if err != nil {
		return nil, storeErr("list history", err)
	}
	defer rows.Close()
	list := make([]*entity.History, 0)
	for rows.Next() {
		var h entity.History
		if err := rows.Scan(&h.ID, &h.Username, &h.Name, &h.Stock, &h.Timestamp); err != nil {
			return nil, storeErr("scan history", err)
		}
		list = append(list, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate history", err)
	}
	return list, nil
}
