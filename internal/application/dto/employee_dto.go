package dto

import "time"

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el empleado autenticado.
type LoginResponse struct {
	Token    string           `json:"token"`
	Employee EmployeeResponse `json:"employee"`
}

// CreateEmployeeRequest entrada para crear un empleado (password en texto, se hashea en use case).
type CreateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Role      string `json:"role" validate:"required,oneof=manager cashier cook"`
	Password  string `json:"password" validate:"required,min=8"`
	HireDate  string `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado (sin password).
type UpdateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
	Role      string `json:"role" validate:"required,oneof=manager cashier cook"`
	Active    bool   `json:"active"`
}

// UpdateProfileRequest campos que un empleado puede cambiar de su propio perfil.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=30"`
}

// ChangePasswordRequest entrada para cambio de contraseña (verifica la actual).
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// EmployeeResponse salida de un empleado (sin password hash).
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	HireDate  time.Time `json:"hire_date"`
	Active    bool      `json:"active"`
}
