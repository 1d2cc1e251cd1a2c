package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pizzeria-pro/internal/application/auth"
	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados (rutas de manager).
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hireDate := time.Now()
	if in.HireDate != "" {
		d, err := time.Parse("2006-01-02", in.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		hireDate = d
	}
	employee := &entity.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		PasswordHash: string(hash),
		HireDate:     hireDate,
		Active:       true,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return auth.ToEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return auth.ToEmployeeResponse(employee), nil
}

// List lista todos los empleados ordenados por apellido.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, *auth.ToEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza datos, rol y estado de un empleado. No toca el password.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if in.Email != employee.Email {
		existing, err := uc.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	employee.FirstName = in.FirstName
	employee.LastName = in.LastName
	employee.Email = in.Email
	employee.Phone = in.Phone
	employee.Role = in.Role
	employee.Active = in.Active
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return auth.ToEmployeeResponse(employee), nil
}

// Delete elimina un empleado. Empleados con pedidos registrados no pueden
// borrarse (FK RESTRICT): el repositorio devuelve ErrConflict y se debe
// desactivar la cuenta en su lugar.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrEmployeeNotFound
	}
	return uc.repo.Delete(ctx, id)
}
