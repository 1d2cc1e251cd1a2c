package dto

import "github.com/shopspring/decimal"

// RecentOrderDTO pedido reciente del dashboard.
type RecentOrderDTO struct {
	OrderID      int64           `json:"order_id"`
	OrderDate    string          `json:"order_date"`
	TotalCents   int64           `json:"total_cents"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customer_name"`
}

// TopPizzaDTO pizza más vendida (unidades acumuladas).
type TopPizzaDTO struct {
	Name      string `json:"name"`
	Size      string `json:"size"`
	UnitsSold int64  `json:"units_sold"`
}

// StatusBreakdownDTO conteo y total de pedidos por estado.
type StatusBreakdownDTO struct {
	Status     string          `json:"status"`
	Count      int64           `json:"count"`
	TotalCents int64           `json:"total_cents"`
	Total      decimal.Decimal `json:"total"`
}

// DashboardSummaryDTO resumen que consume la pantalla principal.
type DashboardSummaryDTO struct {
	TotalSalesCents int64                `json:"total_sales_cents"`
	TotalSales      decimal.Decimal      `json:"total_sales"`
	AvgOrderValue   decimal.Decimal      `json:"avg_order_value"`
	TotalOrders     int64                `json:"total_orders"`
	TotalCustomers  int64                `json:"total_customers"`
	PendingOrders   int64                `json:"pending_orders"`
	RecentOrders    []RecentOrderDTO     `json:"recent_orders"`
	TopPizzas       []TopPizzaDTO        `json:"top_pizzas"`
	SalesByStatus   []StatusBreakdownDTO `json:"sales_by_status"`
}
