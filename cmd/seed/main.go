package main

import (
	"context"
	"errors"
	"flag"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/jhoicas/almacen-api/pkg/password"
)

// Aprovisiona una cuenta con rol explícito (camino confiable, sin registro
// self-service). Uso típico: crear el primer admin de un entorno nuevo.
//
//	go run ./cmd/seed -username admin -password <secreto> -role 5
func main() {
	var (
		username = flag.String("username", "", "username de la cuenta")
		pass     = flag.String("password", "", "password en texto plano (se hashea)")
		role     = flag.Int("role", entity.RoleAdmin, "rol [1,5]")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	store, err := sqlite.Open(ctx, cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base SQLite")
	}
	defer store.Close()

	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	userUC := usecase.NewUserUseCase(sqlite.NewUserRepository(store), hasher, log)

	user, err := userUC.AddUserWithRole(ctx, *username, *pass, *role)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			log.Fatal().Str("username", *username).Msg("el username ya existe")
		}
		log.Fatal().Err(err).Msg("crear cuenta")
	}
	log.Info().Int64("id", user.ID).Str("username", user.Username).Int("role", user.Role).Msg("cuenta creada")
}
