package repository

import "github.com/jmontoya/directorio-usuarios/internal/domain/entity"

// LocationRepository define el puerto de solo lectura del catálogo de ubicaciones.
type LocationRepository interface {
	Countries() ([]entity.Country, error)
	Departments(countryID int64) ([]entity.Department, error)
	Municipalities(departmentID int64) ([]entity.Municipality, error)
}
