package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pizzeria-pro/internal/application/analytics"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

// fakeAnalyticsRepo devuelve datos fijos; failOn fuerza el error en una
// consulta concreta para probar el manejo de fallos del fan-out.
type fakeAnalyticsRepo struct {
	failOn string
}

var errQuery = errors.New("fallo simulado de consulta")

func (f *fakeAnalyticsRepo) GetSalesTotals(context.Context) (int64, int64, decimal.Decimal, error) {
	if f.failOn == "sales" {
		return 0, 0, decimal.Zero, errQuery
	}
	return 491900, 100, decimal.NewFromFloat(49.19), nil
}

func (f *fakeAnalyticsRepo) CountCustomers(context.Context) (int64, error) {
	if f.failOn == "customers" {
		return 0, errQuery
	}
	return 42, nil
}

func (f *fakeAnalyticsRepo) CountOrdersByStatus(_ context.Context, status string) (int64, error) {
	if f.failOn == "pending" {
		return 0, errQuery
	}
	if status == entity.OrderStatusPending {
		return 7, nil
	}
	return 0, nil
}

func (f *fakeAnalyticsRepo) GetRecentOrders(_ context.Context, limit int) ([]repository.RecentOrderResult, error) {
	if f.failOn == "recent" {
		return nil, errQuery
	}
	rows := []repository.RecentOrderResult{
		{OrderID: 10, OrderDate: "2026-08-30 12:00", TotalCents: 4919, Status: entity.OrderStatusCompleted, CustomerName: "Ana García"},
		{OrderID: 9, OrderDate: "2026-08-30 11:30", TotalCents: 2198, Status: entity.OrderStatusPending, CustomerName: "Luis Pérez"},
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeAnalyticsRepo) GetTopPizzas(_ context.Context, limit int) ([]repository.TopPizzaResult, error) {
	if f.failOn == "top" {
		return nil, errQuery
	}
	return []repository.TopPizzaResult{
		{Name: "Margarita", Size: "medium", UnitsSold: 120},
		{Name: "Pepperoni", Size: "large", UnitsSold: 95},
	}, nil
}

func (f *fakeAnalyticsRepo) GetStatusBreakdown(context.Context) ([]repository.StatusBreakdownResult, error) {
	if f.failOn == "status" {
		return nil, errQuery
	}
	return []repository.StatusBreakdownResult{
		{Status: entity.OrderStatusCompleted, Count: 100, TotalCents: 491900},
		{Status: entity.OrderStatusPending, Count: 7, TotalCents: 31000},
	}, nil
}

func TestGetSummary_AgregaTodasLasConsultas(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(491900), out.TotalSalesCents)
	assert.Equal(t, "4919.00", out.TotalSales.StringFixed(2))
	assert.Equal(t, "49.19", out.AvgOrderValue.StringFixed(2))
	assert.Equal(t, int64(100), out.TotalOrders)
	assert.Equal(t, int64(42), out.TotalCustomers)
	assert.Equal(t, int64(7), out.PendingOrders)

	require.Len(t, out.RecentOrders, 2)
	assert.Equal(t, int64(10), out.RecentOrders[0].OrderID)
	assert.Equal(t, "49.19", out.RecentOrders[0].Total.StringFixed(2))

	require.Len(t, out.TopPizzas, 2)
	assert.Equal(t, "Margarita", out.TopPizzas[0].Name)
	assert.Equal(t, int64(120), out.TopPizzas[0].UnitsSold)

	require.Len(t, out.SalesByStatus, 2)
	assert.Equal(t, entity.OrderStatusCompleted, out.SalesByStatus[0].Status)
}

func TestGetSummary_PropagaErrorDeCualquierConsulta(t *testing.T) {
	for _, failOn := range []string{"sales", "customers", "pending", "recent", "top", "status"} {
		t.Run(failOn, func(t *testing.T) {
			uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{failOn: failOn})
			_, err := uc.GetSummary(context.Background())
			assert.ErrorIs(t, err, errQuery)
		})
	}
}
