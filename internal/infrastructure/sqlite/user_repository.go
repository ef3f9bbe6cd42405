package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{db: store.DB()}
}

// Create persiste un nuevo usuario. Una violación del índice único de username
// se traduce a domain.ErrDuplicateUsername.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password, role, locked, failed_attempts)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		user.Username, user.PasswordHash, user.Role, boolToInt(user.Locked), user.FailedAttempts,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateUsername
		}
		return storeErr("insert user", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		user.ID = id
	}
	return nil
}

// FindByUsername obtiene un usuario por username exacto; (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password, role, locked, failed_attempts
		FROM users WHERE username = ? LIMIT 1`
	var u entity.User
	var locked int
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &locked, &u.FailedAttempts,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get user by username", err)
	}
	u.Locked = locked == 1
	return &u, nil
}

// Exists verifica si ya hay una fila con ese username.
func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE username = ? LIMIT 1`, username).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, storeErr("check username", err)
	}
	return true, nil
}

// List devuelve todos los usuarios; slice vacío si no hay filas.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT id, username, password, role, locked, failed_attempts FROM users`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		var u entity.User
		var locked int
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &locked, &u.FailedAttempts); err != nil {
			return nil, storeErr("scan user", err)
		}
		u.Locked = locked == 1
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate users", err)
	}
	return list, nil
}

// DeleteByUsername borra por coincidencia exacta (sin normalizar); cero filas
// afectadas no es error.
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username); err != nil {
		return storeErr("delete user", err)
	}
	return nil
}

// ResetFailedAttempts pone el contador en cero con una sola sentencia.
func (r *UserRepo) ResetFailedAttempts(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE users SET failed_attempts = 0 WHERE username = ?`, username); err != nil {
		return storeErr("reset failed_attempts", err)
	}
	return nil
}

// RegisterFailedAttempt incrementa el contador y bloquea si el valor
// post-incremento alcanza el umbral. Una sola sentencia condicional: los
// intentos fallidos concurrentes no pueden perderse ni saltarse el umbral.
func (r *UserRepo) RegisterFailedAttempt(ctx context.Context, username string, threshold int) error {
	query := `
		UPDATE users
		SET failed_attempts = failed_attempts + 1,
		    locked = CASE WHEN failed_attempts + 1 >= ? THEN 1 ELSE locked END
		WHERE username = ?`
	if _, err := r.db.ExecContext(ctx, query, threshold, username); err != nil {
		return storeErr("register failed attempt", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
