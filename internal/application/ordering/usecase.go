package ordering

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

// Config parámetros del módulo de pedidos.
type Config struct {
	DefaultTaxRateBps int64         // tasa aplicada cuando la petición no trae una
	PersistTimeout    time.Duration // tope para las operaciones de persistencia
}

// OrderUseCase crea, consulta y transiciona pedidos.
//
// El precio unitario de cada línea se captura del catálogo al crear el
// pedido; los campos financieros de la cabecera quedan inmutables. La
// inserción de cabecera + líneas ocurre en una sola transacción (TxRunner).
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	pizzaRepo repository.PizzaRepository
	cfg       Config
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	pizzaRepo repository.PizzaRepository,
	cfg Config,
) *OrderUseCase {
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = 5 * time.Second
	}
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, pizzaRepo: pizzaRepo, cfg: cfg}
}

// PlaceOrder valida las líneas, captura precios del catálogo, calcula
// subtotal/impuesto/total en centavos enteros y persiste cabecera + líneas
// de forma atómica. employeeID viene del token verificado, nunca de un
// estado global.
//
// Fallos: ErrEmptyOrder (sin líneas), ErrInvalidQuantity (cantidad < 1),
// ErrNotFound (pizza inexistente), ErrPizzaUnavailable (no disponible o
// archivada). Los errores de persistencia se devuelven envueltos, sin
// reintentos; la política de retry es del llamador.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, employeeID int64, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if in.CustomerID == 0 || employeeID == 0 {
		return nil, domain.ErrInvalidInput
	}

	taxRateBps := uc.cfg.DefaultTaxRateBps
	if in.TaxRateBps != nil {
		if *in.TaxRateBps < 0 {
			return nil, domain.ErrInvalidInput
		}
		taxRateBps = *in.TaxRateBps
	}

	ids := make([]int64, len(in.Items))
	for i, item := range in.Items {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		ids[i] = item.PizzaID
	}

	// Lectura del catálogo fuera de la transacción: el precio se captura
	// aquí y queda congelado en la línea.
	pizzas, err := uc.pizzaRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("consultar catálogo: %w", err)
	}
	pizzaByID := make(map[int64]*entity.Pizza, len(pizzas))
	for _, p := range pizzas {
		pizzaByID[p.ID] = p
	}

	var subtotal int64
	details := make([]*entity.OrderDetail, len(in.Items))
	for i, item := range in.Items {
		pizza, ok := pizzaByID[item.PizzaID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		if !pizza.Available || pizza.Archived {
			return nil, domain.ErrPizzaUnavailable
		}
		lineSubtotal := entity.LineSubtotalCents(item.Quantity, pizza.BasePriceCents)
		subtotal += lineSubtotal
		details[i] = &entity.OrderDetail{
			PizzaID:        pizza.ID,
			Quantity:       item.Quantity,
			UnitPriceCents: pizza.BasePriceCents,
			SubtotalCents:  lineSubtotal,
			PizzaName:      pizza.Name,
			PizzaSize:      pizza.Size,
		}
	}

	tax := entity.TaxCentsFor(subtotal, taxRateBps)
	order := &entity.Order{
		CustomerID:    in.CustomerID,
		EmployeeID:    employeeID,
		SubtotalCents: subtotal,
		TaxRateBps:    taxRateBps,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
		Status:        entity.OrderStatusPending,
		Notes:         in.Notes,
	}

	txCtx, cancel := context.WithTimeout(ctx, uc.cfg.PersistTimeout)
	defer cancel()

	err = uc.txRunner.RunOrder(txCtx, func(orderRepo repository.OrderRepository) error {
		if err := orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		for _, d := range details {
			d.OrderID = order.ID
			if err := orderRepo.CreateDetail(txCtx, d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("persistir pedido: %w", err)
	}

	return toOrderResponse(order, details), nil
}

// GetByID devuelve la cabecera con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.orderRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, details), nil
}

// List devuelve todos los pedidos con nombres de cliente y empleado, sin líneas.
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *toOrderResponse(o, nil))
	}
	return out, nil
}

// UpdateStatus aplica una transición de la tabla explícita de estados.
// Solo toca el campo status; los montos nunca cambian. La actualización es
// condicional al estado leído, de modo que dos transiciones concurrentes no
// pueden pisarse.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id int64, newStatus string) error {
	if !entity.ValidOrderStatus(newStatus) {
		return domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.PersistTimeout)
	defer cancel()

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, newStatus) {
		return domain.ErrInvalidTransition
	}
	affected, err := uc.orderRepo.UpdateStatusFrom(ctx, id, order.Status, newStatus)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Otro actor movió el estado entre la lectura y el update.
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina el pedido; las líneas caen por cascada en la misma sentencia.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.PersistTimeout)
	defer cancel()

	affected, err := uc.orderRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toOrderResponse(o *entity.Order, details []*entity.OrderDetail) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		EmployeeID:    o.EmployeeID,
		EmployeeName:  o.EmployeeName,
		OrderDate:     o.OrderDate,
		SubtotalCents: o.SubtotalCents,
		Subtotal:      dto.Cents(o.SubtotalCents),
		TaxRateBps:    o.TaxRateBps,
		TaxCents:      o.TaxCents,
		Tax:           dto.Cents(o.TaxCents),
		TotalCents:    o.TotalCents,
		Total:         dto.Cents(o.TotalCents),
		Status:        o.Status,
		Notes:         o.Notes,
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.OrderDetailResponse{
			ID:             d.ID,
			PizzaID:        d.PizzaID,
			PizzaName:      d.PizzaName,
			PizzaSize:      d.PizzaSize,
			Quantity:       d.Quantity,
			UnitPriceCents: d.UnitPriceCents,
			UnitPrice:      dto.Cents(d.UnitPriceCents),
			SubtotalCents:  d.SubtotalCents,
			Subtotal:       dto.Cents(d.SubtotalCents),
		})
	}
	return resp
}
