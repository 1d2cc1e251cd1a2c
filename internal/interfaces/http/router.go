package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/pizzeria-pro/internal/application/analytics"
	"github.com/tu-usuario/pizzeria-pro/internal/application/auth"
	"github.com/tu-usuario/pizzeria-pro/internal/application/ordering"
	"github.com/tu-usuario/pizzeria-pro/internal/application/receipts"
	"github.com/tu-usuario/pizzeria-pro/internal/application/usecase"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *usecase.CustomerUseCase
	PizzaUC     *usecase.PizzaUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	OrderUC     *ordering.OrderUseCase
	ReceiptUC   *receipts.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público; el resto requiere token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil propio (protegido)
	me := protected.Group("/auth")
	me.Get("/me", authHandler.Me)
	me.Put("/me", authHandler.UpdateProfile)
	me.Post("/change-password", authHandler.ChangePassword)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Archive)

	// Pizzas (lectura para todos; mutaciones solo manager)
	pizzas := protected.Group("/pizzas")
	pizzaHandler := NewPizzaHandler(deps.PizzaUC)
	pizzas.Get("/", pizzaHandler.List)
	pizzas.Get("/:id", pizzaHandler.GetByID)
	managerOnly := RequireRole(entity.RoleManager)
	pizzas.Post("/", managerOnly, pizzaHandler.Create)
	pizzas.Put("/:id", managerOnly, pizzaHandler.Update)
	pizzas.Delete("/:id", managerOnly, pizzaHandler.Archive)
	pizzas.Post("/:id/restore", managerOnly, pizzaHandler.Restore)
	pizzas.Delete("/:id/permanent", managerOnly, pizzaHandler.PermanentDelete)

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", managerOnly, orderHandler.Delete)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Employees (solo manager)
	employees := protected.Group("/employees", managerOnly)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
