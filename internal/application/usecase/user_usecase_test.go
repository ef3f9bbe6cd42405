package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
)

func newUserUC(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return usecase.NewUserUseCase(sqlite.NewUserRepository(store), password.NewHasher(bcrypt.MinCost), logger.Nop())
}

func TestAddUserNormaliza(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	user, err := uc.AddUser(ctx, "  Alice  ", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username, "trim + minúsculas")
	assert.Equal(t, entity.RoleClient, user.Role)
	assert.False(t, user.Locked)

	// La unicidad es sobre el username normalizado.
	assert.True(t, uc.IsUsernameTaken(ctx, "alice"))
	_, err = uc.AddUser(ctx, "alice", "otra")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	_, err = uc.AddUser(ctx, "ALICE", "otra")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestAddUserEntradaInvalida(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	_, err := uc.AddUser(ctx, "   ", "pass")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddUser(ctx, "alice", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddUserPasswordMuyLargo(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	// bcrypt admite hasta 72 bytes de texto plano; un byte más se rechaza en
	// validación en lugar de llegar al hasher.
	largo := strings.Repeat("a", password.MaxLength+1)
	_, err := uc.AddUser(ctx, "alice", largo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, uc.IsUsernameTaken(ctx, "alice"))

	_, err = uc.AddUserWithRole(ctx, "root", largo, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, uc.IsUsernameTaken(ctx, "root"))

	// El límite exacto sigue siendo válido.
	_, err = uc.AddUser(ctx, "alice", strings.Repeat("a", password.MaxLength))
	require.NoError(t, err)
}

func TestAddUserWithRole(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	user, err := uc.AddUserWithRole(ctx, "Root", "secreto123", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	// El camino de aprovisionamiento no normaliza (asimetría heredada,
	// documentada en DESIGN.md).
	assert.Equal(t, "Root", user.Username)
}

func TestAddUserWithRoleFueraDeRango(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	for _, role := range []int{0, -1, 6, 100} {
		_, err := uc.AddUserWithRole(ctx, "bob", "secreto123", role)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rol %d", role)
	}
	// Nada quedó insertado.
	assert.False(t, uc.IsUsernameTaken(ctx, "bob"))
}

func TestAddUserWithRoleDuplicadoDelIndice(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	_, err := uc.AddUserWithRole(ctx, "root", "secreto123", entity.RoleAdmin)
	require.NoError(t, err)
	// Sin pre-chequeo, pero el índice único del store igual lo ataja.
	_, err = uc.AddUserWithRole(ctx, "root", "otra", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestRemoveUserCoincidenciaExacta(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	_, err := uc.AddUser(ctx, "alice", "secreto123")
	require.NoError(t, err)

	// "Alice" no coincide con la fila almacenada "alice".
	require.NoError(t, uc.RemoveUser(ctx, "Alice"))
	assert.True(t, uc.IsUsernameTaken(ctx, "alice"))

	require.NoError(t, uc.RemoveUser(ctx, "alice"))
	assert.False(t, uc.IsUsernameTaken(ctx, "alice"))

	// Cero coincidencias no es error.
	assert.NoError(t, uc.RemoveUser(ctx, "alice"))
}

func TestLecturasSobreUsuarioFantasma(t *testing.T) {
	uc := newUserUC(t)
	ctx := context.Background()

	assert.Equal(t, -1, uc.GetUserRole(ctx, "fantasma"))
	assert.False(t, uc.IsAccountLocked(ctx, "fantasma"))
	assert.False(t, uc.IsUsernameTaken(ctx, "fantasma"))
}

func TestGetUsersVacio(t *testing.T) {
	uc := newUserUC(t)

	users, err := uc.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

// ──────────────────────────────────────────────────────────────────────────────
// Políticas de degradación ante fallas del store (repo que siempre falla)
// ──────────────────────────────────────────────────────────────────────────────

var errStoreCaido = errors.New("store caído")

// failingUserRepo simula un backend con fallas en todas las operaciones.
type failingUserRepo struct{}

func (failingUserRepo) Create(context.Context, *entity.User) error { return errStoreCaido }
func (failingUserRepo) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, errStoreCaido
}
func (failingUserRepo) Exists(context.Context, string) (bool, error) { return false, errStoreCaido }
func (failingUserRepo) List(context.Context) ([]*entity.User, error) { return nil, errStoreCaido }
func (failingUserRepo) DeleteByUsername(context.Context, string) error { return errStoreCaido }
func (failingUserRepo) ResetFailedAttempts(context.Context, string) error { return errStoreCaido }
func (failingUserRepo) RegisterFailedAttempt(context.Context, string, int) error {
	return errStoreCaido
}

func TestPoliticasDeDegradacion(t *testing.T) {
	uc := usecase.NewUserUseCase(failingUserRepo{}, password.NewHasher(bcrypt.MinCost), logger.Nop())
	ctx := context.Background()

	// Fail closed: ante falla, el username se reporta ocupado.
	assert.True(t, uc.IsUsernameTaken(ctx, "alice"))

	// Fail open: ante falla, la cuenta se reporta desbloqueada.
	assert.False(t, uc.IsAccountLocked(ctx, "alice"))

	// Rol desconocido: -1 significa "no se puede autorizar".
	assert.Equal(t, -1, uc.GetUserRole(ctx, "alice"))

	// Los caminos de escritura sí surfean la falla.
	err := uc.RemoveUser(ctx, "alice")
	assert.Error(t, err)
}
