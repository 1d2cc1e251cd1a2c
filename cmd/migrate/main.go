// migrate aplica las migraciones pendientes y termina. Útil para pipelines
// de despliegue donde la API no debe arrancar hasta que el esquema esté listo.
package main

import (
	"context"

	"github.com/tu-usuario/pizzeria-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/pizzeria-pro/internal/migrate"
	"github.com/tu-usuario/pizzeria-pro/pkg/config"
	"github.com/tu-usuario/pizzeria-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}

	log.Info().Msg("migraciones aplicadas")
}
