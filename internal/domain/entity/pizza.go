package entity

import "time"

// Pizza representa un producto del catálogo.
// BasePriceCents es el precio vigente en centavos; los pedidos capturan este
// valor al momento de crearse, de modo que cambios posteriores de precio no
// alteran pedidos históricos.
// Available controla si se puede vender; Archived la retira del catálogo sin
// borrarla (las líneas de pedido la siguen referenciando).
// Tamaños válidos para Pizza.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// ValidPizzaSize indica si el tamaño es uno de los conocidos.
func ValidPizzaSize(size string) bool {
	switch size {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

type Pizza struct {
	ID             int64
	Name           string
	Description    string
	Size           string // small, medium, large
	BasePriceCents int64
	Category       string
	Available      bool
	Archived       bool
	CreatedAt      time.Time
}
