// Package analytics contiene los casos de uso de solo lectura para el
// dashboard de ventas.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

const (
	dashboardRecentOrders = 5 // pedidos en el widget de recientes
	dashboardTopPizzas    = 5 // pizzas en el widget de más vendidas
)

// DashboardUseCase genera el resumen de ventas de la pantalla principal.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a las tablas de pedidos; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Las cinco consultas son independientes entre sí, así que se lanzan en
// goroutines y se recogen por canal.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type salesResult struct {
		totalCents int64
		orders     int64
		avgOrder   decimal.Decimal
		err        error
	}
	type countResult struct {
		n   int64
		err error
	}
	type recentResult struct {
		rows []repository.RecentOrderResult
		err  error
	}
	type topResult struct {
		rows []repository.TopPizzaResult
		err  error
	}
	type statusResult struct {
		rows []repository.StatusBreakdownResult
		err  error
	}

	salesCh := make(chan salesResult, 1)
	customersCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)
	topCh := make(chan topResult, 1)
	statusCh := make(chan statusResult, 1)

	go func() {
		total, orders, avg, err := uc.analyticsRepo.GetSalesTotals(ctx)
		salesCh <- salesResult{total, orders, avg, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrdersByStatus(ctx, entity.OrderStatusPending)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetRecentOrders(ctx, dashboardRecentOrders)
		recentCh <- recentResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopPizzas(ctx, dashboardTopPizzas)
		topCh <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetStatusBreakdown(ctx)
		statusCh <- statusResult{rows, err}
	}()

	sales := <-salesCh
	customers := <-customersCh
	pending := <-pendingCh
	recent := <-recentCh
	top := <-topCh
	status := <-statusCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: totales de ventas: %w", sales.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de clientes: %w", customers.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos pendientes: %w", pending.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos recientes: %w", recent.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: pizzas más vendidas: %w", top.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: ventas por estado: %w", status.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalSalesCents: sales.totalCents,
		TotalSales:      dto.Cents(sales.totalCents),
		AvgOrderValue:   sales.avgOrder.Round(2),
		TotalOrders:     sales.orders,
		TotalCustomers:  customers.n,
		PendingOrders:   pending.n,
		RecentOrders:    make([]dto.RecentOrderDTO, 0, len(recent.rows)),
		TopPizzas:       make([]dto.TopPizzaDTO, 0, len(top.rows)),
		SalesByStatus:   make([]dto.StatusBreakdownDTO, 0, len(status.rows)),
	}
	for _, r := range recent.rows {
		summary.RecentOrders = append(summary.RecentOrders, dto.RecentOrderDTO{
			OrderID:      r.OrderID,
			OrderDate:    r.OrderDate,
			TotalCents:   r.TotalCents,
			Total:        dto.Cents(r.TotalCents),
			Status:       r.Status,
			CustomerName: r.CustomerName,
		})
	}
	for _, r := range top.rows {
		summary.TopPizzas = append(summary.TopPizzas, dto.TopPizzaDTO{
			Name:      r.Name,
			Size:      r.Size,
			UnitsSold: r.UnitsSold,
		})
	}
	for _, r := range status.rows {
		summary.SalesByStatus = append(summary.SalesByStatus, dto.StatusBreakdownDTO{
			Status:     r.Status,
			Count:      r.Count,
			TotalCents: r.TotalCents,
			Total:      dto.Cents(r.TotalCents),
		})
	}
	return summary, nil
}
