package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmployeeNotFound   = errors.New("empleado no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores del módulo de pedidos.
	ErrEmptyOrder        = errors.New("el pedido no tiene líneas")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor o igual a 1")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrPizzaUnavailable  = errors.New("la pizza no está disponible")
)
