package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePizzaRequest entrada para crear una pizza. El precio se recibe en
// centavos para evitar redondeos de coma flotante en la capa HTTP.
type CreatePizzaRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Description    string `json:"description" validate:"omitempty,max=500"`
	Size           string `json:"size" validate:"required,oneof=small medium large"`
	BasePriceCents int64  `json:"base_price_cents" validate:"required,min=0"`
	Category       string `json:"category" validate:"required,max=50"`
	Available      bool   `json:"available"`
}

// UpdatePizzaRequest entrada para actualizar una pizza.
type UpdatePizzaRequest = CreatePizzaRequest

// PizzaResponse salida de una pizza. BasePrice es la forma decimal de
// BasePriceCents, solo para presentación.
type PizzaResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Size           string          `json:"size"`
	BasePriceCents int64           `json:"base_price_cents"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Category       string          `json:"category"`
	Available      bool            `json:"available"`
	Archived       bool            `json:"archived"`
	CreatedAt      time.Time       `json:"created_at"`
}
