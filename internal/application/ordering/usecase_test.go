package ordering_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/application/ordering"
	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeOrderRepo simula la persistencia de pedidos. failDetailAfter permite
// forzar un fallo a mitad de la inserción de líneas para probar atomicidad.
type fakeOrderRepo struct {
	nextID          int64
	orders          map[int64]*entity.Order
	details         map[int64][]*entity.OrderDetail
	failDetailAfter int // -1 = nunca falla
	detailInserts   int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		nextID:          1,
		orders:          make(map[int64]*entity.Order),
		details:         make(map[int64][]*entity.OrderDetail),
		failDetailAfter: -1,
	}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	o.ID = f.nextID
	f.nextID++
	o.OrderDate = time.Now()
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) CreateDetail(_ context.Context, d *entity.OrderDetail) error {
	if f.failDetailAfter >= 0 && f.detailInserts >= f.failDetailAfter {
		return errors.New("fallo simulado de inserción")
	}
	f.detailInserts++
	d.ID = int64(f.detailInserts)
	cp := *d
	f.details[d.OrderID] = append(f.details[d.OrderID], &cp)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeOrderRepo) GetDetails(_ context.Context, orderID int64) ([]*entity.OrderDetail, error) {
	return f.details[orderID], nil
}

func (f *fakeOrderRepo) UpdateStatusFrom(_ context.Context, id int64, from, to string) (int64, error) {
	o, ok := f.orders[id]
	if !ok || o.Status != from {
		return 0, nil
	}
	o.Status = to
	return 1, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.orders[id]; !ok {
		return 0, nil
	}
	delete(f.orders, id)
	delete(f.details, id)
	return 1, nil
}

// fakeTxRunner ejecuta el callback contra el fake y, si falla, descarta lo
// escrito (simula el rollback de la transacción real).
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (f *fakeTxRunner) RunOrder(_ context.Context, fn func(repository.OrderRepository) error) error {
	before := make(map[int64]bool, len(f.repo.orders))
	for id := range f.repo.orders {
		before[id] = true
	}
	if err := fn(f.repo); err != nil {
		// rollback: eliminar todo lo insertado durante el callback
		for id := range f.repo.orders {
			if !before[id] {
				delete(f.repo.orders, id)
				delete(f.repo.details, id)
			}
		}
		return err
	}
	return nil
}

// fakePizzaRepo catálogo fijo en memoria. Solo implementa lo que el caso de
// uso de pedidos consume.
type fakePizzaRepo struct {
	pizzas map[int64]*entity.Pizza
}

func newFakePizzaRepo(pizzas ...*entity.Pizza) *fakePizzaRepo {
	m := make(map[int64]*entity.Pizza, len(pizzas))
	for _, p := range pizzas {
		m[p.ID] = p
	}
	return &fakePizzaRepo{pizzas: m}
}

func (f *fakePizzaRepo) GetByIDs(_ context.Context, ids []int64) ([]*entity.Pizza, error) {
	var out []*entity.Pizza
	for _, id := range ids {
		if p, ok := f.pizzas[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePizzaRepo) Create(context.Context, *entity.Pizza) error  { return nil }
func (f *fakePizzaRepo) Update(context.Context, *entity.Pizza) error  { return nil }
func (f *fakePizzaRepo) Archive(context.Context, int64) error         { return nil }
func (f *fakePizzaRepo) Restore(context.Context, int64) error         { return nil }
func (f *fakePizzaRepo) PermanentDelete(context.Context, int64) error { return nil }
func (f *fakePizzaRepo) GetByID(_ context.Context, id int64) (*entity.Pizza, error) {
	return f.pizzas[id], nil
}
func (f *fakePizzaRepo) List(context.Context) ([]*entity.Pizza, error)          { return nil, nil }
func (f *fakePizzaRepo) ListAvailable(context.Context) ([]*entity.Pizza, error) { return nil, nil }
func (f *fakePizzaRepo) ListArchived(context.Context) ([]*entity.Pizza, error)  { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildUseCase(t *testing.T) (*ordering.OrderUseCase, *fakeOrderRepo) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	pizzaRepo := newFakePizzaRepo(
		&entity.Pizza{ID: 1, Name: "Margarita", Size: "medium", BasePriceCents: 1099, Available: true},
		&entity.Pizza{ID: 2, Name: "Pepperoni", Size: "large", BasePriceCents: 1549, Available: true},
		&entity.Pizza{ID: 3, Name: "Calzone", Size: "small", BasePriceCents: 650, Available: true},
		&entity.Pizza{ID: 4, Name: "Retirada", Size: "medium", BasePriceCents: 999, Available: false},
		&entity.Pizza{ID: 5, Name: "Archivada", Size: "large", BasePriceCents: 1299, Available: true, Archived: true},
	)
	uc := ordering.NewOrderUseCase(&fakeTxRunner{repo: orderRepo}, orderRepo, pizzaRepo, ordering.Config{
		DefaultTaxRateBps: 700,
		PersistTimeout:    time.Second,
	})
	return uc, orderRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_CalculaTotalesEnCentavos(t *testing.T) {
	uc, repo := buildUseCase(t)

	out, err := uc.PlaceOrder(context.Background(), 7, dto.CreateOrderRequest{
		CustomerID: 3,
		Items: []dto.OrderItemRequest{
			{PizzaID: 1, Quantity: 2}, // 2×1099 = 2198
			{PizzaID: 2, Quantity: 1}, // 1×1549 = 1549
			{PizzaID: 3, Quantity: 2}, // 2×650  = 1300
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4597), out.SubtotalCents)
	assert.Equal(t, int64(700), out.TaxRateBps)
	assert.Equal(t, int64(322), out.TaxCents, "321.79 redondea half-up a 322")
	assert.Equal(t, int64(4919), out.TotalCents)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, "49.19", out.Total.StringFixed(2))
	assert.Len(t, out.Details, 3)

	// Persistido: cabecera + 3 líneas con el ID asignado por la secuencia
	stored := repo.orders[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, int64(7), stored.EmployeeID)
	assert.Len(t, repo.details[out.ID], 3)
}

func TestPlaceOrder_CapturaPrecioDelCatalogo(t *testing.T) {
	uc, repo := buildUseCase(t)

	out, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
		CustomerID: 1,
		Items:      []dto.OrderItemRequest{{PizzaID: 2, Quantity: 3}},
	})
	require.NoError(t, err)

	line := repo.details[out.ID][0]
	assert.Equal(t, int64(1549), line.UnitPriceCents, "el precio sale del catálogo, no del cliente")
	assert.Equal(t, int64(4647), line.SubtotalCents)
}

func TestPlaceOrder_TasaExplicitaDelRequest(t *testing.T) {
	uc, _ := buildUseCase(t)

	rate := int64(0)
	out, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
		CustomerID: 1,
		TaxRateBps: &rate,
		Items:      []dto.OrderItemRequest{{PizzaID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.TaxCents)
	assert.Equal(t, out.SubtotalCents, out.TotalCents)
}

func TestPlaceOrder_PedidoVacio(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{CustomerID: 1})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestPlaceOrder_CantidadInvalida(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
		CustomerID: 1,
		Items:      []dto.OrderItemRequest{{PizzaID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPlaceOrder_PizzaInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
		CustomerID: 1,
		Items:      []dto.OrderItemRequest{{PizzaID: 99, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrder_PizzaNoDisponible(t *testing.T) {
	uc, _ := buildUseCase(t)
	for _, pizzaID := range []int64{4, 5} { // no disponible y archivada
		_, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
			CustomerID: 1,
			Items:      []dto.OrderItemRequest{{PizzaID: pizzaID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrPizzaUnavailable)
	}
}

func TestPlaceOrder_TasaNegativaRechazada(t *testing.T) {
	uc, _ := buildUseCase(t)
	rate := int64(-1)
	_, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
		CustomerID: 1,
		TaxRateBps: &rate,
		Items:      []dto.OrderItemRequest{{PizzaID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Atomicidad: si una línea falla, no debe quedar cabecera huérfana.
func TestPlaceOrder_FalloEnLineaNoDejasCabecera(t *testing.T) {
	uc, repo := buildUseCase(t)
	repo.failDetailAfter = 1 // la segunda línea falla

	_, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
		CustomerID: 1,
		Items: []dto.OrderItemRequest{
			{PizzaID: 1, Quantity: 1},
			{PizzaID: 2, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Empty(t, repo.orders, "la transacción debe revertir la cabecera")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus / Delete / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func placeTestOrder(t *testing.T, uc *ordering.OrderUseCase) int64 {
	t.Helper()
	out, err := uc.PlaceOrder(context.Background(), 1, dto.CreateOrderRequest{
		CustomerID: 1,
		Items:      []dto.OrderItemRequest{{PizzaID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	return out.ID
}

func TestUpdateStatus_CaminoFeliz(t *testing.T) {
	uc, repo := buildUseCase(t)
	id := placeTestOrder(t, uc)

	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.OrderStatusInProgress))
	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.OrderStatusCompleted))
	assert.Equal(t, entity.OrderStatusCompleted, repo.orders[id].Status)
}

func TestUpdateStatus_TransicionInvalida(t *testing.T) {
	uc, _ := buildUseCase(t)
	id := placeTestOrder(t, uc)

	err := uc.UpdateStatus(context.Background(), id, entity.OrderStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "Pending no puede saltar a Completed")
}

func TestUpdateStatus_EstadoTerminalBloqueado(t *testing.T) {
	uc, _ := buildUseCase(t)
	id := placeTestOrder(t, uc)

	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.OrderStatusCancelled))
	err := uc.UpdateStatus(context.Background(), id, entity.OrderStatusInProgress)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _ := buildUseCase(t)
	id := placeTestOrder(t, uc)

	err := uc.UpdateStatus(context.Background(), id, "Delivered")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_PedidoInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	err := uc.UpdateStatus(context.Background(), 404, entity.OrderStatusInProgress)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_NoAlteraMontos(t *testing.T) {
	uc, repo := buildUseCase(t)
	id := placeTestOrder(t, uc)
	before := *repo.orders[id]

	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.OrderStatusInProgress))

	after := repo.orders[id]
	assert.Equal(t, before.SubtotalCents, after.SubtotalCents)
	assert.Equal(t, before.TaxCents, after.TaxCents)
	assert.Equal(t, before.TotalCents, after.TotalCents)
}

func TestDelete_EliminaCabeceraYLineas(t *testing.T) {
	uc, repo := buildUseCase(t)
	id := placeTestOrder(t, uc)

	require.NoError(t, uc.Delete(context.Background(), id))
	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.details)
}

func TestDelete_PedidoInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	err := uc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_IncluyeLineas(t *testing.T) {
	uc, _ := buildUseCase(t)
	id := placeTestOrder(t, uc)

	out, err := uc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, out.Details, 1)
	assert.Equal(t, "Margarita", out.Details[0].PizzaName)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
