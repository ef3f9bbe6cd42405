package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// newTestStore abre una base nueva en un directorio temporal del test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserCreateYFind(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	u := &entity.User{Username: "alice", PasswordHash: "$2a$10$xxxx", Role: entity.RoleClient}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID, "el insert debe devolver el id autoincremental")

	got, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, entity.RoleClient, got.Role)
	assert.False(t, got.Locked)
	assert.Zero(t, got.FailedAttempts)
}

func TestUserFindInexistente(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	got, err := repo.FindByUsername(context.Background(), "fantasma")
	require.NoError(t, err)
	assert.Nil(t, got, "sin fila debe ser (nil, nil), no un error")
}

func TestUserDuplicado(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "h", Role: 2}))
	err := repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "h2", Role: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserExists(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	taken, err := repo.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, taken)

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "h", Role: 2}))

	taken, err = repo.Exists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUserListVacia(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list, "sin filas debe ser colección vacía, no error")
}

func TestUserDeleteExacto(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "alice", PasswordHash: "h", Role: 2}))

	// El borrado no normaliza: "Alice" no coincide con "alice".
	require.NoError(t, repo.DeleteByUsername(ctx, "Alice"))
	got, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, got)

	require.NoError(t, repo.DeleteByUsername(ctx, "alice"))
	got, err = repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Cero coincidencias no es error.
	assert.NoError(t, repo.DeleteByUsername(ctx, "alice"))
}

func TestRegisterFailedAttemptBloqueaEnElUmbral(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "h", Role: 2}))

	for i := 1; i <= entity.MaxFailedAttempts; i++ {
		require.NoError(t, repo.RegisterFailedAttempt(ctx, "bob", entity.MaxFailedAttempts))
		got, err := repo.FindByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, i, got.FailedAttempts)
		assert.Equal(t, i >= entity.MaxFailedAttempts, got.Locked, "se bloquea exactamente en el umbral")
	}
}

func TestResetFailedAttempts(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "bob", PasswordHash: "h", Role: 2}))
	require.NoError(t, repo.RegisterFailedAttempt(ctx, "bob", entity.MaxFailedAttempts))
	require.NoError(t, repo.RegisterFailedAttempt(ctx, "bob", entity.MaxFailedAttempts))

	require.NoError(t, repo.ResetFailedAttempts(ctx, "bob"))

	got, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, got.FailedAttempts)
	assert.False(t, got.Locked, "el reset no toca locked")
}

// N intentos fallidos en paralelo: el update condicional de una sola sentencia
// no pierde incrementos ni se salta el umbral.
func TestRegisterFailedAttemptConcurrente(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Username: "carol", PasswordHash: "h", Role: 2}))

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.RegisterFailedAttempt(ctx, "carol", entity.MaxFailedAttempts)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.FindByUsername(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, n, got.FailedAttempts, "sin updates perdidos")
	assert.True(t, got.Locked)
}
