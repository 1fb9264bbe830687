package usecase_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmontoya/directorio-usuarios/internal/application/dto"
	"github.com/jmontoya/directorio-usuarios/internal/application/usecase"
	"github.com/jmontoya/directorio-usuarios/internal/domain"
	"github.com/jmontoya/directorio-usuarios/internal/domain/entity"
	"github.com/jmontoya/directorio-usuarios/internal/domain/location"
	"github.com/jmontoya/directorio-usuarios/pkg/textutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// fakeUserRepo emula el store: asigna ids y created_at, filtra y pagina como
// lo haría la consulta real, y recuerda el último término recibido.
type fakeUserRepo struct {
	users    map[int64]entity.User
	order    []int64 // orden de inserción, proxy de created_at
	nextID   int64
	lastTerm string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]entity.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	user.ID = r.nextID
	user.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(r.nextID) * time.Minute)
	r.nextID++
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *fakeUserRepo) Search(term string, page, pageSize int) ([]entity.UserListItem, int64, error) {
	r.lastTerm = term
	var matches []entity.UserListItem
	for _, id := range r.order {
		u := r.users[id]
		if term != "" && !strings.Contains(textutil.Fold(u.Name), term) && !strings.Contains(u.Phone, term) {
			continue
		}
		matches = append(matches, entity.UserListItem{
			ID: u.ID, Name: u.Name, Phone: u.Phone, Address: u.Address,
			CountryID: u.CountryID, CountryName: "Colombia",
			DepartmentID: u.DepartmentID, DepartmentName: "Antioquia",
			MunicipalityID: u.MunicipalityID, MunicipalityName: "Medellín",
			CreatedAt: u.CreatedAt,
		})
	}
	total := int64(len(matches))
	start := (page - 1) * pageSize
	if start >= len(matches) {
		return nil, total, nil
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}
	pageRows := matches[start:end]
	for i := range pageRows {
		pageRows[i].TotalCount = total
	}
	return pageRows, total, nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	stored.Name = user.Name
	stored.Phone = user.Phone
	stored.Address = user.Address
	stored.CountryID = user.CountryID
	stored.DepartmentID = user.DepartmentID
	stored.MunicipalityID = user.MunicipalityID
	r.users[user.ID] = stored
	return nil
}

func (r *fakeUserRepo) Delete(id int64) error {
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func newUC(repo *fakeUserRepo) *usecase.UserUseCase {
	return usecase.NewUserUseCase(repo, location.New(nil))
}

func validCreate() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:           "María Gómez",
		Phone:          "3001234567",
		Address:        "Cra 43A #1-50",
		CountryID:      1,
		DepartmentID:   10,
		MunicipalityID: 100,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Valido_AsignaIDYPersiste(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	id, err := uc.Create(validCreate())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := uc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "María Gómez", got.Name)
	assert.Equal(t, "3001234567", got.Phone)
	assert.Equal(t, "Cra 43A #1-50", got.Address)
	assert.Equal(t, int64(1), got.CountryID)
	assert.Equal(t, int64(10), got.DepartmentID)
	assert.Equal(t, int64(100), got.MunicipalityID)
	assert.False(t, got.CreatedAt.IsZero(), "el store debe asignar created_at")
}

func TestCreate_NombreOTelefonoEnBlanco(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateUserRequest)
	}{
		{"nombre vacío", func(in *dto.CreateUserRequest) { in.Name = "" }},
		{"nombre solo espacios", func(in *dto.CreateUserRequest) { in.Name = "   " }},
		{"teléfono vacío", func(in *dto.CreateUserRequest) { in.Phone = "" }},
		{"teléfono solo espacios", func(in *dto.CreateUserRequest) { in.Phone = "\t " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			uc := newUC(repo)
			in := validCreate()
			tc.mutate(&in)

			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrMissingField)
			assert.Empty(t, repo.users, "no debe persistirse ninguna fila")
		})
	}
}

func TestCreate_UbicacionNoPositiva(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateUserRequest)
	}{
		{"país cero", func(in *dto.CreateUserRequest) { in.CountryID = 0 }},
		{"departamento negativo", func(in *dto.CreateUserRequest) { in.DepartmentID = -5 }},
		{"municipio cero", func(in *dto.CreateUserRequest) { in.MunicipalityID = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			uc := newUC(repo)
			in := validCreate()
			tc.mutate(&in)

			_, err := uc.Create(in)
			assert.ErrorIs(t, err, domain.ErrInvalidLocation)
			assert.Empty(t, repo.users)
		})
	}
}

func TestCreate_TelefonoDuplicado_SeAcepta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	_, err := uc.Create(validCreate())
	require.NoError(t, err)
	id2, err := uc.Create(validCreate())
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2, "el directorio no exige unicidad de teléfono")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ReemplazaCamposYConservaCreatedAt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	id, err := uc.Create(validCreate())
	require.NoError(t, err)
	before, err := uc.GetByID(id)
	require.NoError(t, err)

	err = uc.Update(id, dto.UpdateUserRequest{
		Name:           "María Fernanda Gómez",
		Phone:          "3017654321",
		Address:        "Cl 10 #20-30",
		CountryID:      1,
		DepartmentID:   11,
		MunicipalityID: 110,
	})
	require.NoError(t, err)

	after, err := uc.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "María Fernanda Gómez", after.Name)
	assert.Equal(t, "3017654321", after.Phone)
	assert.Equal(t, "Cl 10 #20-30", after.Address)
	assert.Equal(t, int64(11), after.DepartmentID)
	assert.Equal(t, int64(110), after.MunicipalityID)
	assert.Equal(t, before.CreatedAt, after.CreatedAt, "created_at es inmutable")
}

func TestUpdate_IDInexistente(t *testing.T) {
	uc := newUC(newFakeUserRepo())
	in := dto.UpdateUserRequest{
		Name: "Alguien", Phone: "3000000000",
		CountryID: 1, DepartmentID: 10, MunicipalityID: 100,
	}
	err := uc.Update(999, in)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdate_ValidaAntesDeEscribir(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	id, err := uc.Create(validCreate())
	require.NoError(t, err)

	err = uc.Update(id, dto.UpdateUserRequest{
		Name: "X", Phone: "123", CountryID: 1, DepartmentID: 0, MunicipalityID: 100,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)

	got, _ := uc.GetByID(id)
	assert.Equal(t, "María Gómez", got.Name, "la fila no debe cambiar si la validación falla")
}

func TestDelete_LuegoGetByIDEsNil(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	id, err := uc.Create(validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(id))
	got, err := uc.GetByID(id)
	require.NoError(t, err)
	assert.Nil(t, got, "la ausencia no es error en GetByID")
}

func TestDelete_DosVeces_EsIdempotente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	id, err := uc.Create(validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(id))
	assert.NoError(t, uc.Delete(id))
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func seed(t *testing.T, uc *usecase.UserUseCase, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		in := validCreate()
		in.Name = fmt.Sprintf("Usuario %02d", i)
		in.Phone = fmt.Sprintf("30012345%02d", i)
		_, err := uc.Create(in)
		require.NoError(t, err)
	}
}

func TestSearch_25FilasConPageSize10(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	seed(t, uc, 25)

	page1, err := uc.Search("", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Users, 10)
	assert.Equal(t, int64(25), page1.TotalCount)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 10, page1.PageSize)

	page3, err := uc.Search("", 3, 10)
	require.NoError(t, err)
	assert.Len(t, page3.Users, 5)
	assert.Equal(t, int64(25), page3.TotalCount)

	// Página fuera de rango: vacía pero con el total correcto.
	page4, err := uc.Search("", 4, 10)
	require.NoError(t, err)
	assert.Empty(t, page4.Users)
	assert.Equal(t, int64(25), page4.TotalCount)
	assert.Equal(t, 3, page4.TotalPages)
}

func TestSearch_SinFilas(t *testing.T) {
	uc := newUC(newFakeUserRepo())
	resp, err := uc.Search("", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Users)
	assert.Equal(t, int64(0), resp.TotalCount)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestSearch_FiltraPorTermino(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	seed(t, uc, 3)
	in := validCreate()
	in.Name = "Carolina Restrepo"
	_, err := uc.Create(in)
	require.NoError(t, err)

	resp, err := uc.Search("restrepo", 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Carolina Restrepo", resp.Users[0].Name)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, "Colombia", resp.Users[0].CountryName)
	assert.Equal(t, "Medellín", resp.Users[0].MunicipalityName)
}

func TestSearch_NormalizaElTermino(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	in := validCreate()
	in.Name = "José Pérez"
	_, err := uc.Create(in)
	require.NoError(t, err)

	resp, err := uc.Search("  JOSÉ PÉREZ ", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "jose perez", repo.lastTerm, "el término llega plegado al repositorio")
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "José Pérez", resp.Users[0].Name)
}

func TestSearch_AjustaPaginaYTamano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	seed(t, uc, 5)

	resp, err := uc.Search("", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Len(t, resp.Users, 5)

	resp, err = uc.Search("", 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.PageSize, "pageSize se limita al máximo")
}
