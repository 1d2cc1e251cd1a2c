package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas para el dashboard. Solo lectura, de
// modo que siempre opera sobre el pool directo, nunca en transacción.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesTotals ventas acumuladas de pedidos completados. El promedio
// sale como NUMERIC y se escanea a decimal (codec pgx registrado en el pool).
func (r *AnalyticsRepo) GetSalesTotals(ctx context.Context) (int64, int64, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_cents), 0),
		       COUNT(*),
		       COALESCE(AVG(total_cents) / 100.0, 0)
		FROM orders
		WHERE status = $1`
	var totalCents, orders int64
	var avg decimal.Decimal
	err := r.q.QueryRow(ctx, query, entity.OrderStatusCompleted).Scan(&totalCents, &orders, &avg)
	if err != nil {
		return 0, 0, decimal.Zero, fmt.Errorf("sales totals: %w", err)
	}
	return totalCents, orders, avg, nil
}

func (r *AnalyticsRepo) CountCustomers(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE archived = FALSE`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return n, nil
}

// GetRecentOrders últimos pedidos para el widget de actividad.
func (r *AnalyticsRepo) GetRecentOrders(ctx context.Context, limit int) ([]repository.RecentOrderResult, error) {
	query := `
		SELECT o.order_id, to_char(o.order_date, 'YYYY-MM-DD HH24:MI'),
		       o.total_cents, o.status,
		       c.first_name || ' ' || c.last_name
		FROM orders o
		JOIN customers c ON c.customer_id = o.customer_id
		ORDER BY o.order_date DESC, o.order_id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentOrderResult
	for rows.Next() {
		var ro repository.RecentOrderResult
		if err := rows.Scan(&ro.OrderID, &ro.OrderDate, &ro.TotalCents, &ro.Status, &ro.CustomerName); err != nil {
			return nil, fmt.Errorf("scan recent order: %w", err)
		}
		list = append(list, ro)
	}
	return list, rows.Err()
}

// GetTopPizzas pizzas más vendidas por unidades, sobre pedidos completados.
func (r *AnalyticsRepo) GetTopPizzas(ctx context.Context, limit int) ([]repository.TopPizzaResult, error) {
	query := `
		SELECT p.name, p.size, SUM(d.quantity)
		FROM order_details d
		JOIN pizzas p ON p.pizza_id = d.pizza_id
		JOIN orders o ON o.order_id = d.order_id
		WHERE o.status = $1
		GROUP BY p.pizza_id, p.name, p.size
		ORDER BY SUM(d.quantity) DESC, p.name
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, entity.OrderStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("top pizzas: %w", err)
	}
	defer rows.Close()
	var list []repository.TopPizzaResult
	for rows.Next() {
		var tp repository.TopPizzaResult
		if err := rows.Scan(&tp.Name, &tp.Size, &tp.UnitsSold); err != nil {
			return nil, fmt.Errorf("scan top pizza: %w", err)
		}
		list = append(list, tp)
	}
	return list, rows.Err()
}

// GetStatusBreakdown conteo y monto por estado para el gráfico del dashboard.
func (r *AnalyticsRepo) GetStatusBreakdown(ctx context.Context) ([]repository.StatusBreakdownResult, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_cents), 0)
		FROM orders
		GROUP BY status
		ORDER BY status`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusBreakdownResult
	for rows.Next() {
		var sb repository.StatusBreakdownResult
		if err := rows.Scan(&sb.Status, &sb.Count, &sb.TotalCents); err != nil {
			return nil, fmt.Errorf("scan status breakdown: %w", err)
		}
		list = append(list, sb)
	}
	return list, rows.Err()
}
