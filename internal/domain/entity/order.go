package entity

import "time"

// Estados de un pedido. Completed y Cancelled son terminales.
const (
	OrderStatusPending    = "Pending"
	OrderStatusInProgress = "InProgress"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
)

// orderTransitions tabla explícita de transiciones permitidas.
// El sistema anterior aplicaba cualquier estado sin validar; aquí toda
// transición fuera de la tabla se rechaza.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// ValidOrderStatus indica si el valor es un estado conocido.
func ValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

// CanTransition indica si el cambio de estado from -> to está permitido.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order cabecera de un pedido. Los campos financieros se expresan en centavos
// (enteros) y son inmutables después de la creación; corregir un pedido mal
// cobrado requiere cancelarlo y crear otro.
//
// Invariantes:
//
//	TaxCents   == roundHalfUp(SubtotalCents * TaxRateBps / 10000)
//	TotalCents == SubtotalCents + TaxCents
//	SubtotalCents == Σ detalle.Quantity * detalle.UnitPriceCents
type Order struct {
	ID            int64
	CustomerID    int64
	EmployeeID    int64
	OrderDate     time.Time
	SubtotalCents int64
	TaxRateBps    int64 // basis points: 700 = 7.00%
	TaxCents      int64
	TotalCents    int64
	Status        string
	Notes         string

	// Nombres unidos en listados (no persisten en orders).
	CustomerName string
	EmployeeName string
}

// OrderDetail línea persistida de un pedido. Pertenece en exclusiva a su Order
// y se elimina en cascada con él. UnitPriceCents es el precio capturado al
// crear el pedido, no el precio actual del catálogo.
type OrderDetail struct {
	ID             int64
	OrderID        int64
	PizzaID        int64
	Quantity       int64
	UnitPriceCents int64
	SubtotalCents  int64

	// Datos de la pizza unidos en consultas (no persisten en order_details).
	PizzaName string
	PizzaSize string
}

// LineSubtotalCents subtotal exacto de una línea (multiplicación entera, sin flotantes).
func LineSubtotalCents(quantity, unitPriceCents int64) int64 {
	return quantity * unitPriceCents
}

// TaxCentsFor impuesto en centavos sobre un subtotal, con redondeo
// half-up al centavo más cercano. Solo opera sobre valores no negativos.
func TaxCentsFor(subtotalCents, taxRateBps int64) int64 {
	return (subtotalCents*taxRateBps + 5000) / 10000
}
