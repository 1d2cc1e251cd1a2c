package entity

import "time"

// Customer representa un cliente de la pizzería.
// El borrado es lógico (Archived) para preservar el historial de pedidos.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Archived  bool
	CreatedAt time.Time
}

// FullName nombre completo para listados.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
