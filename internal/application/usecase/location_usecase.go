package usecase

import (
	"github.com/jmontoya/directorio-usuarios/internal/application/dto"
	"github.com/jmontoya/directorio-usuarios/internal/domain/repository"
)

// LocationUseCase expone el catálogo de ubicaciones para los selectores en
// cascada del frontend. Solo lectura.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso sobre el puerto del catálogo
// (usualmente el decorado con caché).
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Countries lista todos los países.
func (uc *LocationUseCase) Countries() ([]dto.CountryResponse, error) {
	list, err := uc.repo.Countries()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CountryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CountryResponse{ID: c.ID, Name: c.Name, IsoCode: c.IsoCode})
	}
	return out, nil
}

// Departments lista los departamentos de un país.
func (uc *LocationUseCase) Departments(countryID int64) ([]dto.DepartmentResponse, error) {
	list, err := uc.repo.Departments(countryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DepartmentResponse{ID: d.ID, CountryID: d.CountryID, Name: d.Name})
	}
	return out, nil
}

// Municipalities lista los municipios de un departamento.
func (uc *LocationUseCase) Municipalities(departmentID int64) ([]dto.MunicipalityResponse, error) {
	list, err := uc.repo.Municipalities(departmentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MunicipalityResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MunicipalityResponse{ID: m.ID, DepartmentID: m.DepartmentID, Name: m.Name})
	}
	return out, nil
}
