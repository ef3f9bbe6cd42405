package entity

// Roles válidos para User (enteros 1–5; 2 es el rol por defecto en registro).
const (
	RoleDisabled = 1
	RoleClient   = 2
	RoleStaff    = 3
	RoleManager  = 4
	RoleAdmin    = 5
)

// MaxFailedAttempts cantidad de intentos fallidos consecutivos que bloquea la cuenta.
const MaxFailedAttempts = 3

// RoleValid indica si un rol está dentro del rango permitido [1,5].
func RoleValid(role int) bool {
	return role >= RoleDisabled && role <= RoleAdmin
}

// User representa una cuenta del sistema.
// PasswordHash es un hash bcrypt; el texto plano nunca se persiste.
// Locked no se revierte desde este núcleo: el desbloqueo es una acción
// administrativa externa.
type User struct {
	ID             int64
	Username       string
	PasswordHash   string
	Role           int
	Locked         bool
	FailedAttempts int
}
