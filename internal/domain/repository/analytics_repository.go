package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// RecentOrderResult fila del widget de pedidos recientes.
type RecentOrderResult struct {
	OrderID      int64
	OrderDate    string
	TotalCents   int64
	Status       string
	CustomerName string
}

// TopPizzaResult fila del widget de pizzas más vendidas.
type TopPizzaResult struct {
	Name      string
	Size      string
	UnitsSold int64
}

// StatusBreakdownResult conteo y total por estado de pedido.
type StatusBreakdownResult struct {
	Status     string
	Count      int64
	TotalCents int64
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	// GetSalesTotals devuelve ventas acumuladas en centavos, número de
	// pedidos y valor promedio por pedido (NUMERIC de la DB).
	GetSalesTotals(ctx context.Context) (totalCents int64, orders int64, avgOrder decimal.Decimal, err error)
	CountCustomers(ctx context.Context) (int64, error)
	CountOrdersByStatus(ctx context.Context, status string) (int64, error)
	GetRecentOrders(ctx context.Context, limit int) ([]RecentOrderResult, error)
	GetTopPizzas(ctx context.Context, limit int) ([]TopPizzaResult, error)
	GetStatusBreakdown(ctx context.Context) ([]StatusBreakdownResult, error)
}
