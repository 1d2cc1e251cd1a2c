package repository

import (
	"context"

	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
)

// OrderRepository contrato de persistencia para pedidos.
// Create asigna el ID (secuencia de la base de datos) y lo deja en order.ID.
// Create y CreateDetail deben invocarse dentro de la misma transacción
// (ver ordering.TxRunner): cabecera sin líneas o líneas sin cabecera no
// son estados válidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateDetail(ctx context.Context, detail *entity.OrderDetail) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	GetDetails(ctx context.Context, orderID int64) ([]*entity.OrderDetail, error)
	// UpdateStatusFrom cambia el estado solo si el actual coincide con from
	// (guarda optimista contra transiciones concurrentes). Devuelve el número
	// de filas afectadas.
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) (int64, error)
	// Delete elimina cabecera y, por cascada, todas sus líneas. Devuelve el
	// número de filas afectadas.
	Delete(ctx context.Context, id int64) (int64, error)
}
