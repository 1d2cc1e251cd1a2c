package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre Postgres.
// Construido sobre Querier: el caso de uso de pedidos lo instancia sobre
// una transacción (ver TxRunner) para que cabecera y líneas se escriban
// atómicamente; las lecturas usan el pool directo.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera del pedido. El ID y la fecha los asigna la
// base de datos y quedan reflejados en order.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (customer_id, employee_id, subtotal_cents, tax_rate_bps, tax_cents, total_cents, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING order_id, order_date`
	err := r.q.QueryRow(ctx, query,
		o.CustomerID, o.EmployeeID, o.SubtotalCents, o.TaxRateBps, o.TaxCents, o.TotalCents, o.Status, o.Notes,
	).Scan(&o.ID, &o.OrderDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateDetail inserta una línea del pedido. Debe ejecutarse en la misma
// transacción que Create.
func (r *OrderRepo) CreateDetail(ctx context.Context, d *entity.OrderDetail) error {
	query := `
		INSERT INTO order_details (order_id, pizza_id, quantity, unit_price_cents, subtotal_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_detail_id`
	err := r.q.QueryRow(ctx, query,
		d.OrderID, d.PizzaID, d.Quantity, d.UnitPriceCents, d.SubtotalCents,
	).Scan(&d.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert order detail: %w", err)
	}
	return nil
}

const orderSelect = `
	SELECT o.order_id, o.customer_id, o.employee_id, o.order_date,
	       o.subtotal_cents, o.tax_rate_bps, o.tax_cents, o.total_cents,
	       o.status, o.notes,
	       c.first_name || ' ' || c.last_name AS customer_name,
	       e.first_name || ' ' || e.last_name AS employee_name
	FROM orders o
	JOIN customers c ON c.customer_id = o.customer_id
	JOIN employees e ON e.employee_id = o.employee_id`

func scanOrder(row pgx.Row, o *entity.Order) error {
	return row.Scan(
		&o.ID, &o.CustomerID, &o.EmployeeID, &o.OrderDate,
		&o.SubtotalCents, &o.TaxRateBps, &o.TaxCents, &o.TotalCents,
		&o.Status, &o.Notes, &o.CustomerName, &o.EmployeeName,
	)
}

// GetByID obtiene la cabecera con nombres de cliente y empleado resueltos.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	var o entity.Order
	err := scanOrder(r.q.QueryRow(ctx, orderSelect+` WHERE o.order_id = $1`, id), &o)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List lista todos los pedidos, más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, orderSelect+` ORDER BY o.order_date DESC, o.order_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// GetDetails obtiene las líneas de un pedido con nombre y tamaño de pizza.
func (r *OrderRepo) GetDetails(ctx context.Context, orderID int64) ([]*entity.OrderDetail, error) {
	query := `
		SELECT d.order_detail_id, d.order_id, d.pizza_id, d.quantity,
		       d.unit_price_cents, d.subtotal_cents, p.name, p.size
		FROM order_details d
		JOIN pizzas p ON p.pizza_id = d.pizza_id
		WHERE d.order_id = $1
		ORDER BY d.order_detail_id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order details: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.PizzaID, &d.Quantity,
			&d.UnitPriceCents, &d.SubtotalCents, &d.PizzaName, &d.PizzaSize); err != nil {
			return nil, fmt.Errorf("scan order detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// UpdateStatusFrom actualización condicionada al estado actual: si otro
// proceso cambió el estado entre la lectura y esta escritura, afecta 0
// filas y el llamador lo trata como conflicto.
func (r *OrderRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $3 WHERE order_id = $1 AND status = $2`,
		id, from, to,
	)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina la cabecera; las líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected(), nil
}
