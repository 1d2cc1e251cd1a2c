package repository

import (
	"context"

	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
)

// PizzaRepository contrato de persistencia para el catálogo.
// El módulo de pedidos solo consume las lecturas (GetByIDs, ListAvailable);
// el resto es administración del catálogo.
type PizzaRepository interface {
	Create(ctx context.Context, pizza *entity.Pizza) error
	GetByID(ctx context.Context, id int64) (*entity.Pizza, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*entity.Pizza, error)
	List(ctx context.Context) ([]*entity.Pizza, error)
	ListAvailable(ctx context.Context) ([]*entity.Pizza, error)
	ListArchived(ctx context.Context) ([]*entity.Pizza, error)
	Update(ctx context.Context, pizza *entity.Pizza) error
	Archive(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	// PermanentDelete borra la fila; falla con ErrConflict si alguna línea
	// de pedido la referencia (FK ON DELETE RESTRICT).
	PermanentDelete(ctx context.Context, id int64) error
}
