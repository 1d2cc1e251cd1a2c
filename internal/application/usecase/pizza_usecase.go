package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

// PizzaUseCase casos de uso del catálogo. El borrado normal es archivo
// lógico (preserva las ventas históricas); el borrado físico solo procede
// si ninguna línea de pedido referencia la pizza.
type PizzaUseCase struct {
	repo repository.PizzaRepository
}

// NewPizzaUseCase construye el caso de uso.
func NewPizzaUseCase(repo repository.PizzaRepository) *PizzaUseCase {
	return &PizzaUseCase{repo: repo}
}

// Create crea una pizza en el catálogo.
func (uc *PizzaUseCase) Create(ctx context.Context, in dto.CreatePizzaRequest) (*dto.PizzaResponse, error) {
	if in.Name == "" || !entity.ValidPizzaSize(in.Size) || in.BasePriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}
	pizza := &entity.Pizza{
		Name:           in.Name,
		Description:    in.Description,
		Size:           in.Size,
		BasePriceCents: in.BasePriceCents,
		Category:       in.Category,
		Available:      in.Available,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, pizza); err != nil {
		return nil, err
	}
	return toPizzaResponse(pizza), nil
}

// GetByID obtiene una pizza por ID (archivadas incluidas).
func (uc *PizzaUseCase) GetByID(ctx context.Context, id int64) (*dto.PizzaResponse, error) {
	pizza, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, domain.ErrNotFound
	}
	return toPizzaResponse(pizza), nil
}

// List lista las pizzas no archivadas.
func (uc *PizzaUseCase) List(ctx context.Context) ([]dto.PizzaResponse, error) {
	return uc.toList(uc.repo.List(ctx))
}

// ListAvailable lista las pizzas vendibles (disponibles y no archivadas).
func (uc *PizzaUseCase) ListAvailable(ctx context.Context) ([]dto.PizzaResponse, error) {
	return uc.toList(uc.repo.ListAvailable(ctx))
}

// ListArchived lista las pizzas archivadas.
func (uc *PizzaUseCase) ListArchived(ctx context.Context) ([]dto.PizzaResponse, error) {
	return uc.toList(uc.repo.ListArchived(ctx))
}

// Update actualiza una pizza. Cambiar el precio no afecta pedidos ya
// creados: cada línea congeló su precio unitario.
func (uc *PizzaUseCase) Update(ctx context.Context, id int64, in dto.UpdatePizzaRequest) (*dto.PizzaResponse, error) {
	if in.Name == "" || !entity.ValidPizzaSize(in.Size) || in.BasePriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}
	pizza, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, domain.ErrNotFound
	}
	pizza.Name = in.Name
	pizza.Description = in.Description
	pizza.Size = in.Size
	pizza.BasePriceCents = in.BasePriceCents
	pizza.Category = in.Category
	pizza.Available = in.Available
	if err := uc.repo.Update(ctx, pizza); err != nil {
		return nil, err
	}
	return toPizzaResponse(pizza), nil
}

// Archive retira la pizza del catálogo sin borrarla.
func (uc *PizzaUseCase) Archive(ctx context.Context, id int64) error {
	return uc.mutateExisting(ctx, id, uc.repo.Archive)
}

// Restore reincorpora una pizza archivada.
func (uc *PizzaUseCase) Restore(ctx context.Context, id int64) error {
	return uc.mutateExisting(ctx, id, uc.repo.Restore)
}

// PermanentDelete borra la fila. Si alguna línea de pedido la referencia,
// el repositorio devuelve ErrConflict (FK RESTRICT) y nada cambia.
func (uc *PizzaUseCase) PermanentDelete(ctx context.Context, id int64) error {
	return uc.mutateExisting(ctx, id, uc.repo.PermanentDelete)
}

func (uc *PizzaUseCase) mutateExisting(ctx context.Context, id int64, op func(context.Context, int64) error) error {
	pizza, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pizza == nil {
		return domain.ErrNotFound
	}
	return op(ctx, id)
}

func (uc *PizzaUseCase) toList(pizzas []*entity.Pizza, err error) ([]dto.PizzaResponse, error) {
	if err != nil {
		return nil, err
	}
	out := make([]dto.PizzaResponse, 0, len(pizzas))
	for _, p := range pizzas {
		out = append(out, *toPizzaResponse(p))
	}
	return out, nil
}

func toPizzaResponse(p *entity.Pizza) *dto.PizzaResponse {
	return &dto.PizzaResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Size:           p.Size,
		BasePriceCents: p.BasePriceCents,
		BasePrice:      dto.Cents(p.BasePriceCents),
		Category:       p.Category,
		Available:      p.Available,
		Archived:       p.Archived,
		CreatedAt:      p.CreatedAt,
	}
}
