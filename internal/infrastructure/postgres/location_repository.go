package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmontoya/directorio-usuarios/internal/domain/entity"
	"github.com/jmontoya/directorio-usuarios/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	pool *pgxpool.Pool
}

// NewLocationRepository construye el adaptador del catálogo de ubicaciones.
func NewLocationRepository(pool *pgxpool.Pool) *LocationRepo {
	return &LocationRepo{pool: pool}
}

// Countries lista todos los países.
func (r *LocationRepo) Countries() ([]entity.Country, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, name, iso_code FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listar países: %w", err)
	}
	defer rows.Close()
	var list []entity.Country
	for rows.Next() {
		var c entity.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.IsoCode); err != nil {
			return nil, fmt.Errorf("scan país: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Departments lista los departamentos de un país.
func (r *LocationRepo) Departments(countryID int64) ([]entity.Department, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, country_id, name FROM departments WHERE country_id = $1 ORDER BY name`, countryID)
	if err != nil {
		return nil, fmt.Errorf("listar departamentos: %w", err)
	}
	defer rows.Close()
	var list []entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.CountryID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan departamento: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Municipalities lista los municipios de un departamento.
func (r *LocationRepo) Municipalities(departmentID int64) ([]entity.Municipality, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT id, department_id, name FROM municipalities WHERE department_id = $1 ORDER BY name`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("listar municipios: %w", err)
	}
	defer rows.Close()
	var list []entity.Municipality
	for rows.Next() {
		var m entity.Municipality
		if err := rows.Scan(&m.ID, &m.DepartmentID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan municipio: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
