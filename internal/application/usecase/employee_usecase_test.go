package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/application/usecase"
	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
)

// memEmployeeRepo repositorio en memoria para los tests de CRUD.
type memEmployeeRepo struct {
	nextID int64
	byID   map[int64]*entity.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{nextID: 1, byID: make(map[int64]*entity.Employee)}
}

func (m *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	e.ID = m.nextID
	m.nextID++
	cp := *e
	m.byID[e.ID] = &cp
	return nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (m *memEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	for _, e := range m.byID {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range m.byID {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	cp := *e
	m.byID[e.ID] = &cp
	return nil
}

func (m *memEmployeeRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	m.byID[id].PasswordHash = hash
	return nil
}

func (m *memEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

func validCreateRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		FirstName: "Ana",
		LastName:  "García",
		Email:     "ana@pizzeria.local",
		Phone:     "555-0001",
		Role:      entity.RoleCashier,
		Password:  "secreto123",
		HireDate:  "2026-01-15",
	}
}

func TestEmployeeCreate_HasheaPasswordYParseaFecha(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo)

	out, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.True(t, out.Active, "los empleados nuevos nacen activos")
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), out.HireDate)

	stored := repo.byID[1]
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password nunca se guarda en claro")
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestEmployeeCreate_Validaciones(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo())

	cases := []struct {
		name   string
		mutate func(*dto.CreateEmployeeRequest)
	}{
		{"sin nombre", func(r *dto.CreateEmployeeRequest) { r.FirstName = "" }},
		{"sin email", func(r *dto.CreateEmployeeRequest) { r.Email = "" }},
		{"password corto", func(r *dto.CreateEmployeeRequest) { r.Password = "corto" }},
		{"rol desconocido", func(r *dto.CreateEmployeeRequest) { r.Role = "chef" }},
		{"fecha inválida", func(r *dto.CreateEmployeeRequest) { r.HireDate = "15/01/2026" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateRequest()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEmployeeCreate_EmailDuplicado(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo())

	_, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestEmployeeUpdate_CambioDeEmailVerificaDuplicado(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo())

	_, err := uc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.Email = "luis@pizzeria.local"
	created, err := uc.Create(context.Background(), second)
	require.NoError(t, err)

	// Cambiar el email del segundo al del primero debe fallar
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		FirstName: "Luis",
		LastName:  "Pérez",
		Email:     "ana@pizzeria.local",
		Role:      entity.RoleCook,
		Active:    true,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// Mantener su propio email está permitido
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{
		FirstName: "Luis",
		LastName:  "Pérez",
		Email:     "luis@pizzeria.local",
		Role:      entity.RoleCook,
		Active:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCook, out.Role)
	assert.False(t, out.Active)
}

func TestEmployeeDelete_Inexistente(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo())
	err := uc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
