package usecase

import (
	"strings"

	"github.com/jmontoya/directorio-usuarios/internal/application/dto"
	"github.com/jmontoya/directorio-usuarios/internal/domain"
	"github.com/jmontoya/directorio-usuarios/internal/domain/entity"
	"github.com/jmontoya/directorio-usuarios/internal/domain/location"
	"github.com/jmontoya/directorio-usuarios/internal/domain/repository"
	"github.com/jmontoya/directorio-usuarios/pkg/textutil"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// UserUseCase aplica las reglas de negocio del directorio de usuarios.
// No guarda estado entre llamadas: cada operación es una unidad de trabajo
// independiente delegada al repositorio, segura bajo llamadas concurrentes.
type UserUseCase struct {
	repo      repository.UserRepository
	locations *location.Validator
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el
// validador de ubicaciones.
func NewUserUseCase(repo repository.UserRepository, locations *location.Validator) *UserUseCase {
	return &UserUseCase{repo: repo, locations: locations}
}

// Create registra un nuevo usuario y devuelve el id asignado por el store.
// No se exige unicidad de teléfono: el directorio acepta duplicados.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (int64, error) {
	if err := uc.validate(in.Name, in.Phone, in.CountryID, in.DepartmentID, in.MunicipalityID); err != nil {
		return 0, err
	}
	user := &entity.User{
		Name:           in.Name,
		Phone:          in.Phone,
		Address:        in.Address,
		CountryID:      in.CountryID,
		DepartmentID:   in.DepartmentID,
		MunicipalityID: in.MunicipalityID,
	}
	if err := uc.repo.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update reemplaza todos los campos mutables del usuario. CreatedAt no se
// toca. Devuelve domain.ErrUserNotFound si el id no existe.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) error {
	if err := uc.validate(in.Name, in.Phone, in.CountryID, in.DepartmentID, in.MunicipalityID); err != nil {
		return err
	}
	user := &entity.User{
		ID:             id,
		Name:           in.Name,
		Phone:          in.Phone,
		Address:        in.Address,
		CountryID:      in.CountryID,
		DepartmentID:   in.DepartmentID,
		MunicipalityID: in.MunicipalityID,
	}
	return uc.repo.Update(user)
}

// Delete elimina un usuario por id. Borrar un id inexistente no es error:
// la operación es idempotente.
func (uc *UserUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Search devuelve una página del listado denormalizado. El término se
// normaliza (espacios, mayúsculas, acentos) antes de consultar; page y
// pageSize fuera de rango se ajustan a valores seguros.
func (uc *UserUseCase) Search(term string, page, pageSize int) (*dto.UserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	items, total, err := uc.repo.Search(textutil.Fold(term), page, pageSize)
	if err != nil {
		return nil, err
	}
	users := make([]dto.UserItem, 0, len(items))
	for _, it := range items {
		users = append(users, dto.UserItem{
			ID:               it.ID,
			Name:             it.Name,
			Phone:            it.Phone,
			Address:          it.Address,
			CountryID:        it.CountryID,
			CountryName:      it.CountryName,
			DepartmentID:     it.DepartmentID,
			DepartmentName:   it.DepartmentName,
			MunicipalityID:   it.MunicipalityID,
			MunicipalityName: it.MunicipalityName,
			CreatedAt:        it.CreatedAt,
		})
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &dto.UserListResponse{
		Users:      users,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (uc *UserUseCase) validate(name, phone string, countryID, departmentID, municipalityID int64) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return domain.ErrMissingField
	}
	return uc.locations.Validate(countryID, departmentID, municipalityID)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Phone:          u.Phone,
		Address:        u.Address,
		CountryID:      u.CountryID,
		DepartmentID:   u.DepartmentID,
		MunicipalityID: u.MunicipalityID,
		CreatedAt:      u.CreatedAt,
	}
}
