package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/pizzeria-pro/internal/application/auth"
	"github.com/tu-usuario/pizzeria-pro/internal/application/dto"
	"github.com/tu-usuario/pizzeria-pro/internal/domain"
	"github.com/tu-usuario/pizzeria-pro/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/pizzeria-pro/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// fakeEmployeeRepo repositorio en memoria indexado por ID y email.
type fakeEmployeeRepo struct {
	byID    map[int64]*entity.Employee
	byEmail map[string]*entity.Employee
}

func newFakeEmployeeRepo(employees ...*entity.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{
		byID:    make(map[int64]*entity.Employee),
		byEmail: make(map[string]*entity.Employee),
	}
	for _, e := range employees {
		f.byID[e.ID] = e
		f.byEmail[e.Email] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	e.ID = int64(len(f.byID) + 1)
	f.byID[e.ID] = e
	f.byEmail[e.Email] = e
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	return f.byID[id], nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	return f.byEmail[email], nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	f.byID[id].PasswordHash = hash
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func buildAuthUseCase(t *testing.T) (*auth.AuthUseCase, *fakeEmployeeRepo) {
	t.Helper()
	repo := newFakeEmployeeRepo(
		&entity.Employee{
			ID: 1, FirstName: "Ana", LastName: "García",
			Email: "ana@pizzeria.local", Role: entity.RoleManager,
			PasswordHash: hashPassword(t, "secreto123"),
			HireDate:     time.Now(), Active: true,
		},
		&entity.Employee{
			ID: 2, FirstName: "Luis", LastName: "Pérez",
			Email: "luis@pizzeria.local", Role: entity.RoleCashier,
			PasswordHash: hashPassword(t, "secreto123"),
			HireDate:     time.Now(), Active: false,
		},
	)
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "pizzeria-pro-test",
	})
	return uc, repo
}

func TestLogin_CaminoFeliz(t *testing.T) {
	uc, _ := buildAuthUseCase(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@pizzeria.local",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, int64(1), out.Employee.ID)
	assert.Equal(t, entity.RoleManager, out.Employee.Role)

	// El token debe llevar el employee_id y el rol
	employeeID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), employeeID)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _ := buildAuthUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@pizzeria.local",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := buildAuthUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@pizzeria.local",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, _ := buildAuthUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "luis@pizzeria.local",
		Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMe(t *testing.T) {
	uc, _ := buildAuthUseCase(t)

	out, err := uc.Me(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.FirstName)

	_, err = uc.Me(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestUpdateProfile(t *testing.T) {
	uc, repo := buildAuthUseCase(t)

	out, err := uc.UpdateProfile(context.Background(), 1, dto.UpdateProfileRequest{
		FirstName: "Ana María",
		LastName:  "García",
		Phone:     "555-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.FirstName)
	assert.Equal(t, "555-1234", repo.byID[1].Phone)

	_, err = uc.UpdateProfile(context.Background(), 1, dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	uc, repo := buildAuthUseCase(t)

	// Contraseña actual incorrecta
	err := uc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "incorrecta",
		NewPassword:     "nuevaclave123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Nueva demasiado corta
	err = uc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "secreto123",
		NewPassword:     "corta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Camino feliz: el hash cambia y la nueva contraseña sirve para login
	err = uc.ChangePassword(context.Background(), 1, dto.ChangePasswordRequest{
		CurrentPassword: "secreto123",
		NewPassword:     "nuevaclave123",
	})
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.byID[1].PasswordHash), []byte("nuevaclave123")))
}
