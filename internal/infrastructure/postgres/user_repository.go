package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmontoya/directorio-usuarios/internal/domain"
	"github.com/jmontoya/directorio-usuarios/internal/domain/entity"
	"github.com/jmontoya/directorio-usuarios/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. ID y CreatedAt los asigna la base de datos
// y se rellenan en el struct recibido.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (name, phone, address, country_id, department_id, municipality_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.pool.QueryRow(context.Background(), query,
		user.Name, user.Phone, user.Address, user.CountryID, user.DepartmentID, user.MunicipalityID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidLocation
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// Search devuelve la página solicitada con los nombres de ubicación resueltos
// y el total de coincidencias calculado en la misma pasada (COUNT(*) OVER()).
// Si la página cae fuera del rango, una consulta de conteo recupera el total.
func (r *UserRepo) Search(term string, page, pageSize int) ([]entity.UserListItem, int64, error) {
	offset := (page - 1) * pageSize
	query := `
		SELECT u.id, u.name, u.phone, u.address,
		       u.country_id, c.name, u.department_id, d.name, u.municipality_id, m.name,
		       u.created_at, COUNT(*) OVER() AS total_count
		FROM users u
		JOIN countries c ON c.id = u.country_id
		JOIN departments d ON d.id = u.department_id
		JOIN municipalities m ON m.id = u.municipality_id
		WHERE ($1 = '' OR unaccent(lower(u.name)) LIKE '%' || $1 || '%' OR u.phone LIKE '%' || $1 || '%')
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, term, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar usuarios: %w", err)
	}
	defer rows.Close()

	var list []entity.UserListItem
	var total int64
	for rows.Next() {
		var it entity.UserListItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Phone, &it.Address,
			&it.CountryID, &it.CountryName, &it.DepartmentID, &it.DepartmentName,
			&it.MunicipalityID, &it.MunicipalityName,
			&it.CreatedAt, &it.TotalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan usuario: %w", err)
		}
		total = it.TotalCount
		list = append(list, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("buscar usuarios: %w", err)
	}
	if len(list) == 0 && page > 1 {
		total, err = r.count(term)
		if err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (r *UserRepo) count(term string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM users u
		WHERE ($1 = '' OR unaccent(lower(u.name)) LIKE '%' || $1 || '%' OR u.phone LIKE '%' || $1 || '%')`
	var total int64
	if err := r.pool.QueryRow(context.Background(), query, term).Scan(&total); err != nil {
		return 0, fmt.Errorf("contar usuarios: %w", err)
	}
	return total, nil
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, name, phone, address, country_id, department_id, municipality_id, created_at
		FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.Phone, &u.Address,
		&u.CountryID, &u.DepartmentID, &u.MunicipalityID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por id: %w", err)
	}
	return &u, nil
}

// Update reemplaza los campos mutables; created_at no se toca.
// Cero filas afectadas significa que el id no existe.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, phone = $3, address = $4,
		       country_id = $5, department_id = $6, municipality_id = $7
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Phone, user.Address,
		user.CountryID, user.DepartmentID, user.MunicipalityID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidLocation
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario por id. Cero filas afectadas no es error.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
