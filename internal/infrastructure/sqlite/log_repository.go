package sqlite

import (
	"context"
	"database/sql"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo implementación del puerto LogRepository sobre SQLite.
type LogRepo struct {
	db *sql.DB
}

// NewLogRepository construye el adaptador de persistencia para la bitácora.
func NewLogRepository(store *Store) *LogRepo {
	return &LogRepo{db: store.DB()}
}

// Create persiste una entrada de la bitácora.
func (r *LogRepo) Create(ctx context.Context, log *entity.Log) error {
	query := `INSERT INTO logs (event, username, desc, timestamp) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, log.Event, log.Username, log.Desc, log.Timestamp)
	if err != nil {
		return storeErr("insert log", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		log.ID = id
	}
	return nil
}

// List devuelve toda la bitácora; slice vacío si no hay filas.
func (r *LogRepo) List(ctx context.Context) ([]*entity.Log, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, event, username, desc, timestamp FROM logs`)
	if err != nil {
		return nil, storeErr("list logs", err)
	}
	defer rows.Close()
	list := make([]*entity.Log, 0)
	for rows.Next() {
		var l entity.Log
		if err := rows.Scan(&l.ID, &l.Event, &l.Username, &l.Desc, &l.Timestamp); err != nil {
			return nil, storeErr("scan log", err)
		}
		list = append(list, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate logs", err)
	}
	return list, nil
}
