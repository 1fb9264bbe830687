// Package location valida las referencias de un usuario a la jerarquía
// país → departamento → municipio.
package location

import (
	"fmt"

	"github.com/jmontoya/directorio-usuarios/internal/domain"
	"github.com/jmontoya/directorio-usuarios/internal/domain/entity"
	"github.com/jmontoya/directorio-usuarios/internal/domain/repository"
)

// Validator verifica la tripleta de ubicación de un usuario. Sin catálogo solo
// exige ids positivos; con catálogo además comprueba que el departamento
// pertenezca al país y el municipio al departamento.
type Validator struct {
	catalog repository.LocationRepository
}

// New construye el validador. catalog puede ser nil para validar solo sintaxis.
func New(catalog repository.LocationRepository) *Validator {
	return &Validator{catalog: catalog}
}

// Validate no tiene efectos secundarios: es función pura de sus entradas más,
// si hay catálogo, dos lecturas sobre él.
func (v *Validator) Validate(countryID, departmentID, municipalityID int64) error {
	if countryID <= 0 || departmentID <= 0 || municipalityID <= 0 {
		return domain.ErrInvalidLocation
	}
	if v.catalog == nil {
		return nil
	}
	departments, err := v.catalog.Departments(countryID)
	if err != nil {
		return fmt.Errorf("consultar departamentos: %w", err)
	}
	if !hasDepartment(departments, departmentID) {
		return domain.ErrInconsistentLocation
	}
	municipalities, err := v.catalog.Municipalities(departmentID)
	if err != nil {
		return fmt.Errorf("consultar municipios: %w", err)
	}
	if !hasMunicipality(municipalities, municipalityID) {
		return domain.ErrInconsistentLocation
	}
	return nil
}

func hasDepartment(list []entity.Department, id int64) bool {
	for _, d := range list {
		if d.ID == id {
			return true
		}
	}
	return false
}

func hasMunicipality(list []entity.Municipality, id int64) bool {
	for _, m := range list {
		if m.ID == id {
			return true
		}
	}
	return false
}
