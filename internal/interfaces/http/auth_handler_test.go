package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// buildAPI arma la app completa sobre una base SQLite temporal.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	userRepo := sqlite.NewUserRepository(store)
	hasher := password.NewHasher(bcrypt.MinCost)
	log := logger.Nop()
	userUC := usecase.NewUserUseCase(userRepo, hasher, log)
	authUC := auth.NewUseCase(userRepo, hasher, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ProductUC: usecase.NewProductUseCase(sqlite.NewProductRepository(store)),
		HistoryUC: usecase.NewHistoryUseCase(sqlite.NewHistoryRepository(store)),
		LogUC:     usecase.NewLogUseCase(sqlite.NewLogRepository(store)),
		JWTSecret: testJWTSecret,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegisterYLogin(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"username": "Alice", "password": "secreto123"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "alice", user["username"], "el registro normaliza el username")

	// Login con el username normalizado.
	resp = postJSON(t, app, "/api/auth/login", fiber.Map{"username": "alice", "password": "secreto123"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out["token"])
}

func TestRegisterDuplicado(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"username": "alice", "password": "secreto123"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Mismo username con otra capitalización: conflicto.
	resp = postJSON(t, app, "/api/auth/register", fiber.Map{"username": "ALICE", "password": "otra"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginRespuestasIndistinguibles(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"username": "alice", "password": "secreto123"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Password incorrecto y usuario inexistente devuelven el mismo 401 con
	// el mismo cuerpo: la respuesta no permite enumerar usernames.
	respBad := postJSON(t, app, "/api/auth/login", fiber.Map{"username": "alice", "password": "otro"})
	defer respBad.Body.Close()
	respGhost := postJSON(t, app, "/api/auth/login", fiber.Map{"username": "fantasma", "password": "otro"})
	defer respGhost.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respBad.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respGhost.StatusCode)
}

func TestLoginCuentaBloqueada(t *testing.T) {
	app := buildAPI(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{"username": "bob", "password": "secreto123"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for i := 0; i < entity.MaxFailedAttempts; i++ {
		r := postJSON(t, app, "/api/auth/login", fiber.Map{"username": "bob", "password": "incorrecto"})
		r.Body.Close()
	}

	// Bloqueada: el password correcto también responde 401 genérico.
	resp = postJSON(t, app, "/api/auth/login", fiber.Map{"username": "bob", "password": "secreto123"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutasProtegidasSinToken(t *testing.T) {
	app := buildAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
