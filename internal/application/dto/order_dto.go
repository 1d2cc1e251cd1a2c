package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea del pedido entrante. El precio unitario NO se
// recibe del cliente: se captura del catálogo al momento de crear el pedido.
type OrderItemRequest struct {
	PizzaID  int64 `json:"pizza_id" validate:"required"`
	Quantity int64 `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear un pedido. TaxRateBps es opcional;
// si es nil se usa la tasa configurada de la aplicación.
type CreateOrderRequest struct {
	CustomerID int64              `json:"customer_id" validate:"required"`
	TaxRateBps *int64             `json:"tax_rate_bps" validate:"omitempty,min=0"`
	Notes      string             `json:"notes" validate:"omitempty,max=500"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest entrada para la transición de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending InProgress Completed Cancelled"`
}

// OrderDetailResponse línea de un pedido.
type OrderDetailResponse struct {
	ID             int64           `json:"id"`
	PizzaID        int64           `json:"pizza_id"`
	PizzaName      string          `json:"pizza_name,omitempty"`
	PizzaSize      string          `json:"pizza_size,omitempty"`
	Quantity       int64           `json:"quantity"`
	UnitPriceCents int64           `json:"unit_price_cents"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	SubtotalCents  int64           `json:"subtotal_cents"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// OrderResponse cabecera de un pedido, con líneas opcionales.
type OrderResponse struct {
	ID            int64                 `json:"id"`
	CustomerID    int64                 `json:"customer_id"`
	CustomerName  string                `json:"customer_name,omitempty"`
	EmployeeID    int64                 `json:"employee_id"`
	EmployeeName  string                `json:"employee_name,omitempty"`
	OrderDate     time.Time             `json:"order_date"`
	SubtotalCents int64                 `json:"subtotal_cents"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxRateBps    int64                 `json:"tax_rate_bps"`
	TaxCents      int64                 `json:"tax_cents"`
	Tax           decimal.Decimal       `json:"tax"`
	TotalCents    int64                 `json:"total_cents"`
	Total         decimal.Decimal       `json:"total"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	Details       []OrderDetailResponse `json:"details,omitempty"`
}
