package dto

import "time"

// CreateUserRequest entrada para registrar un usuario.
type CreateUserRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Phone          string `json:"phone" validate:"required,numeric,max=20"`
	Address        string `json:"address" validate:"max=300"`
	CountryID      int64  `json:"country_id" validate:"required,gt=0"`
	DepartmentID   int64  `json:"department_id" validate:"required,gt=0"`
	MunicipalityID int64  `json:"municipality_id" validate:"required,gt=0"`
}

// UpdateUserRequest entrada para actualizar un usuario: reemplazo completo de
// los campos mutables, sin patch parcial.
type UpdateUserRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Phone          string `json:"phone" validate:"required,numeric,max=20"`
	Address        string `json:"address" validate:"max=300"`
	CountryID      int64  `json:"country_id" validate:"required,gt=0"`
	DepartmentID   int64  `json:"department_id" validate:"required,gt=0"`
	MunicipalityID int64  `json:"municipality_id" validate:"required,gt=0"`
}

// CreateUserResponse salida de la creación con el id asignado por el store.
type CreateUserResponse struct {
	ID int64 `json:"id"`
}

// UserResponse salida de un usuario individual (sin nombres de ubicación).
type UserResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	CountryID      int64     `json:"country_id"`
	DepartmentID   int64     `json:"department_id"`
	MunicipalityID int64     `json:"municipality_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserItem fila de listado con los nombres de ubicación resueltos.
type UserItem struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	CountryID        int64     `json:"country_id"`
	CountryName      string    `json:"country_name"`
	DepartmentID     int64     `json:"department_id"`
	DepartmentName   string    `json:"department_name"`
	MunicipalityID   int64     `json:"municipality_id"`
	MunicipalityName string    `json:"municipality_name"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserListResponse página de resultados con los metadatos de paginación
// adjuntos una sola vez, no por fila.
type UserListResponse struct {
	Users      []UserItem `json:"users"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
