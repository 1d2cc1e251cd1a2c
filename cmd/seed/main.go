// seed crea los datos mínimos para un entorno nuevo: un gerente inicial y
// un catálogo de arranque. Idempotente: si ya hay empleados o pizzas no
// inserta nada.
//
// Uso: go run ./cmd/seed
// El password del gerente sale de SEED_MANAGER_PASSWORD (default "changeme123").
package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
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

	employeeRepo := postgres.NewEmployeeRepository(pool)
	pizzaRepo := postgres.NewPizzaRepository(pool)

	employees, err := employeeRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar empleados")
	}
	if len(employees) == 0 {
		password := "changeme123"
		if env := os.Getenv("SEED_MANAGER_PASSWORD"); env != "" {
			password = env
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		manager := &entity.Employee{
			FirstName:    "Admin",
			LastName:     "Inicial",
			Email:        "admin@pizzeria.local",
			Role:         entity.RoleManager,
			PasswordHash: string(hash),
			HireDate:     time.Now(),
			Active:       true,
		}
		if err := employeeRepo.Create(ctx, manager); err != nil {
			log.Fatal().Err(err).Msg("crear gerente inicial")
		}
		log.Info().Str("email", manager.Email).Msg("gerente inicial creado")
	}

	pizzas, err := pizzaRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar pizzas")
	}
	if len(pizzas) == 0 {
		catalog := []*entity.Pizza{
			{Name: "Margarita", Description: "Tomate, mozzarella y albahaca", Size: "medium", BasePriceCents: 1099, Category: "clásica", Available: true},
			{Name: "Margarita", Description: "Tomate, mozzarella y albahaca", Size: "large", BasePriceCents: 1399, Category: "clásica", Available: true},
			{Name: "Pepperoni", Description: "Pepperoni y mozzarella", Size: "medium", BasePriceCents: 1249, Category: "clásica", Available: true},
			{Name: "Pepperoni", Description: "Pepperoni y mozzarella", Size: "large", BasePriceCents: 1549, Category: "clásica", Available: true},
			{Name: "Hawaiana", Description: "Jamón y piña", Size: "medium", BasePriceCents: 1299, Category: "especial", Available: true},
			{Name: "Cuatro Quesos", Description: "Mozzarella, gorgonzola, parmesano y provolone", Size: "large", BasePriceCents: 1699, Category: "especial", Available: true},
		}
		for _, p := range catalog {
			p.CreatedAt = time.Now()
			if err := pizzaRepo.Create(ctx, p); err != nil {
				log.Fatal().Err(err).Str("pizza", p.Name).Msg("crear pizza")
			}
		}
		log.Info().Int("pizzas", len(catalog)).Msg("catálogo inicial creado")
	}

	log.Info().Msg("seed completado")
}
