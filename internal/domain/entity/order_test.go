package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Precios: aritmética entera en centavos
// ──────────────────────────────────────────────────────────────────────────────

func TestLineSubtotalCents(t *testing.T) {
	assert.Equal(t, int64(0), entity.LineSubtotalCents(0, 1099))
	assert.Equal(t, int64(1099), entity.LineSubtotalCents(1, 1099))
	assert.Equal(t, int64(3297), entity.LineSubtotalCents(3, 1099))
}

// Escenario de referencia: 2×$10.99 + 1×$15.49 + 2×$6.50 = $45.97,
// impuesto 7% = $3.22 (321.79 redondea hacia arriba), total $49.19.
func TestPedidoDeReferencia(t *testing.T) {
	subtotal := entity.LineSubtotalCents(2, 1099) +
		entity.LineSubtotalCents(1, 1549) +
		entity.LineSubtotalCents(2, 650)
	assert.Equal(t, int64(4597), subtotal)

	tax := entity.TaxCentsFor(subtotal, 700)
	assert.Equal(t, int64(322), tax, "321.79 centavos debe redondear a 322")

	assert.Equal(t, int64(4919), subtotal+tax)
}

func TestTaxCentsFor_RedondeoHalfUp(t *testing.T) {
	cases := []struct {
		name     string
		subtotal int64
		rateBps  int64
		want     int64
	}{
		{"exacto sin redondeo", 10000, 700, 700},
		{"fracción < .5 baja", 1001, 700, 70},   // 70.07 -> 70
		{"fracción = .5 sube", 500, 100, 1},     // 0.5 -> 1
		{"fracción > .5 sube", 4597, 700, 322},  // 321.79 -> 322
		{"tasa cero", 4597, 0, 0},
		{"subtotal cero", 0, 700, 0},
		{"tasa alta", 10000, 2150, 2150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.TaxCentsFor(tc.subtotal, tc.rateBps))
		})
	}
}

// La mitad exacta siempre debe subir, nunca redondear al par (no es bankers).
func TestTaxCentsFor_MitadExactaSiempreSube(t *testing.T) {
	// 150 * 100 bps = 15000/10000 = 1.5 -> 2
	assert.Equal(t, int64(2), entity.TaxCentsFor(150, 100))
	// 250 * 100 bps = 2.5 -> 3 (bankers daría 2)
	assert.Equal(t, int64(3), entity.TaxCentsFor(250, 100))
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados del pedido
// ──────────────────────────────────────────────────────────────────────────────

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusPending))
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusInProgress))
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusCompleted))
	assert.True(t, entity.ValidOrderStatus(entity.OrderStatusCancelled))
	assert.False(t, entity.ValidOrderStatus("Delivered"))
	assert.False(t, entity.ValidOrderStatus(""))
	assert.False(t, entity.ValidOrderStatus("pending"), "los estados distinguen mayúsculas")
}

func TestCanTransition_TablaCompleta(t *testing.T) {
	all := []string{
		entity.OrderStatusPending,
		entity.OrderStatusInProgress,
		entity.OrderStatusCompleted,
		entity.OrderStatusCancelled,
	}
	allowed := map[[2]string]bool{
		{entity.OrderStatusPending, entity.OrderStatusInProgress}:   true,
		{entity.OrderStatusPending, entity.OrderStatusCancelled}:    true,
		{entity.OrderStatusInProgress, entity.OrderStatusCompleted}: true,
		{entity.OrderStatusInProgress, entity.OrderStatusCancelled}: true,
	}
	for _, from := range all {
		for _, to := range all {
			got := entity.CanTransition(from, to)
			assert.Equal(t, allowed[[2]string{from, to}], got,
				"transición %s -> %s", from, to)
		}
	}
}

func TestCanTransition_EstadosTerminales(t *testing.T) {
	for _, terminal := range []string{entity.OrderStatusCompleted, entity.OrderStatusCancelled} {
		for _, to := range []string{
			entity.OrderStatusPending, entity.OrderStatusInProgress,
			entity.OrderStatusCompleted, entity.OrderStatusCancelled,
		} {
			assert.False(t, entity.CanTransition(terminal, to),
				"%s es terminal, no admite salida a %s", terminal, to)
		}
	}
}
