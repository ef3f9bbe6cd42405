package sqlite

import (
	"context"
	"fmt"
)

// migrate crea las tablas si no existen, dentro de una transacción.
func (s *Store) migrate(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migración: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role INTEGER DEFAULT 2,
			locked INTEGER DEFAULT 0,
			failed_attempts INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS product (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			stock INTEGER DEFAULT 0,
			price REAL DEFAULT 0.00
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			name TEXT NOT NULL,
			stock INTEGER DEFAULT 0,
			timestamp TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event TEXT NOT NULL,
			username TEXT NOT NULL,
			desc TEXT NOT NULL,
			timestamp TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("crear tabla: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migración: %w", err)
	}
	return nil
}

// DropAll elimina las cuatro tablas. Pensado para reinicios de entorno y tests
// de integración; nunca se invoca desde la API.
func (s *Store) DropAll(ctx context.Context) error {
	for _, table := range []string{"history", "logs", "product", "users"} {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
