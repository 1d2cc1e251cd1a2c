package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Cents convierte centavos a su representación decimal (4919 -> 49.19)
// para los campos de solo lectura de las respuestas. La aritmética de
// precios siempre se hace en centavos enteros; decimal es solo presentación.
func Cents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}
