package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
	"github.com/tu-usuario/pizzeria-pro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, perfil y cambio de contraseña.
// La identidad del empleado siempre viaja explícita (employeeID del token
// verificado); no hay estado global de sesión.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + empleado.
// Cuentas inactivas no pueden iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := uc.employeeRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !employee.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Employee: *ToEmployeeResponse(employee),
	}, nil
}

// Me devuelve el perfil del empleado autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, employeeID int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return ToEmployeeResponse(employee), nil
}

// UpdateProfile actualiza nombre y teléfono del propio empleado.
// Email, rol y estado solo los cambia un manager vía el CRUD de empleados.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, employeeID int64, in dto.UpdateProfileRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	employee.FirstName = in.FirstName
	employee.LastName = in.LastName
	employee.Phone = in.Phone
	if err := uc.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return ToEmployeeResponse(employee), nil
}

// ChangePassword verifica la contraseña actual y guarda el hash de la nueva.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, employeeID int64, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrEmployeeNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.employeeRepo.UpdatePassword(ctx, employeeID, string(hash))
}

// ToEmployeeResponse mapea la entidad a su DTO de salida (sin hash).
func ToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		Role:      e.Role,
		HireDate:  e.HireDate,
		Active:    e.Active,
	}
}
