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

var _ repository.PizzaRepository = (*PizzaRepo)(nil)

// PizzaRepo implementación de PizzaRepository sobre Postgres.
type PizzaRepo struct {
	q Querier
}

// NewPizzaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPizzaRepository(q Querier) *PizzaRepo {
	return &PizzaRepo{q: q}
}

const pizzaColumns = `pizza_id, name, description, size, base_price_cents, category, available, archived, created_at`

// Create persiste una nueva pizza; el ID lo asigna la secuencia.
func (r *PizzaRepo) Create(ctx context.Context, p *entity.Pizza) error {
	query := `
		INSERT INTO pizzas (name, description, size, base_price_cents, category, available, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING pizza_id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Description, p.Size, p.BasePriceCents, p.Category, p.Available, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pizza: %w", err)
	}
	return nil
}

func (r *PizzaRepo) GetByID(ctx context.Context, id int64) (*entity.Pizza, error) {
	query := `SELECT ` + pizzaColumns + ` FROM pizzas WHERE pizza_id = $1`
	var p entity.Pizza
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Size, &p.BasePriceCents,
		&p.Category, &p.Available, &p.Archived, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pizza: %w", err)
	}
	return &p, nil
}

// GetByIDs obtiene varias pizzas en una sola consulta. Los IDs que no
// existen simplemente no aparecen en el resultado; el llamador decide.
func (r *PizzaRepo) GetByIDs(ctx context.Context, ids []int64) ([]*entity.Pizza, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + pizzaColumns + ` FROM pizzas WHERE pizza_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get pizzas by ids: %w", err)
	}
	defer rows.Close()
	return scanPizzas(rows)
}

func (r *PizzaRepo) List(ctx context.Context) ([]*entity.Pizza, error) {
	return r.listWhere(ctx, `archived = FALSE`)
}

// ListAvailable catálogo vendible: disponibles y no archivadas.
func (r *PizzaRepo) ListAvailable(ctx context.Context) ([]*entity.Pizza, error) {
	return r.listWhere(ctx, `available = TRUE AND archived = FALSE`)
}

func (r *PizzaRepo) ListArchived(ctx context.Context) ([]*entity.Pizza, error) {
	return r.listWhere(ctx, `archived = TRUE`)
}

func (r *PizzaRepo) listWhere(ctx context.Context, cond string) ([]*entity.Pizza, error) {
	query := `SELECT ` + pizzaColumns + ` FROM pizzas WHERE ` + cond + ` ORDER BY name, size`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	defer rows.Close()
	return scanPizzas(rows)
}

func scanPizzas(rows pgx.Rows) ([]*entity.Pizza, error) {
	var list []*entity.Pizza
	for rows.Next() {
		var p entity.Pizza
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Size, &p.BasePriceCents,
			&p.Category, &p.Available, &p.Archived, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pizza: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update modifica los datos de catálogo. El nuevo precio aplica solo a
// pedidos futuros (las líneas existentes capturaron el precio anterior).
func (r *PizzaRepo) Update(ctx context.Context, p *entity.Pizza) error {
	query := `
		UPDATE pizzas
		SET name = $2, description = $3, size = $4, base_price_cents = $5,
		    category = $6, available = $7
		WHERE pizza_id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Size, p.BasePriceCents, p.Category, p.Available,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update pizza: %w", err)
	}
	return nil
}

// Archive retira la pizza del catálogo sin borrarla.
func (r *PizzaRepo) Archive(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE pizzas SET archived = TRUE, available = FALSE WHERE pizza_id = $1`, id)
	if err != nil {
		return fmt.Errorf("archive pizza: %w", err)
	}
	return nil
}

// Restore reincorpora una pizza archivada (queda no disponible hasta que
// un gerente la reactive explícitamente).
func (r *PizzaRepo) Restore(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE pizzas SET archived = FALSE WHERE pizza_id = $1`, id)
	if err != nil {
		return fmt.Errorf("restore pizza: %w", err)
	}
	return nil
}

// PermanentDelete borra la fila. La FK de order_details es RESTRICT, así
// que una pizza con ventas históricas no se puede eliminar.
func (r *PizzaRepo) PermanentDelete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM pizzas WHERE pizza_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete pizza: %w", err)
	}
	return nil
}
