package repository

import (
	"context"

	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
)

// CustomerRepository contrato de persistencia para clientes.
// Archive es borrado lógico: el cliente deja de aparecer en listados pero
// sus pedidos (FK RESTRICT) se conservan.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Archive(ctx context.Context, id int64) error
}
