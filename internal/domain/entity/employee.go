package entity

import "time"

// Roles válidos para Employee.
const (
	RoleManager = "manager"
	RoleCashier = "cashier"
	RoleCook    = "cook"
)

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleManager, RoleCashier, RoleCook:
		return true
	}
	return false
}

// Employee representa un empleado de la pizzería (puede iniciar sesión).
type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Role         string // manager, cashier, cook
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	HireDate     time.Time
	Active       bool
}

// FullName nombre completo para listados y pedidos.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
