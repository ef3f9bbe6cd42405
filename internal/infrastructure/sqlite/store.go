package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store encapsula el handle a la base SQLite embebida. Un único archivo,
// acceso sincrónico; cada operación toma y libera una conexión del pool de
// database/sql en todos sus caminos de salida.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo de base de datos y ejecuta las migraciones.
// WAL permite lecturas concurrentes con un escritor; busy_timeout hace que los
// escritores concurrentes esperen en lugar de fallar con SQLITE_BUSY.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping base de datos: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migraciones: %w", err)
	}
	return s, nil
}

// DB expone el handle para los repositorios.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close cierra la conexión a la base.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
