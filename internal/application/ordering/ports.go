package ordering

import (
	"context"

	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

// TxRunner ejecuta fn con un OrderRepository atado a una transacción.
// Si fn devuelve error, la transacción se revierte completa: nunca queda una
// cabecera sin líneas ni líneas sin cabecera.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
