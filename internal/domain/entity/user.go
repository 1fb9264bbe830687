package entity

import "time"

// User representa un usuario registrado en el directorio, vinculado a la
// jerarquía país → departamento → municipio. ID y CreatedAt los asigna la base
// de datos al crear; después son inmutables.
type User struct {
	ID             int64
	Name           string
	Phone          string
	Address        string
	CountryID      int64
	DepartmentID   int64
	MunicipalityID int64
	CreatedAt      time.Time
}

// UserListItem es la proyección denormalizada de un usuario para listados:
// incluye los nombres resueltos de la ubicación y el total de filas que
// coinciden con la búsqueda (agregado de ventana, repetido en cada fila).
// Existe solo por consulta; nunca se persiste.
type UserListItem struct {
	ID               int64
	Name             string
	Phone            string
	Address          string
	CountryID        int64
	CountryName      string
	DepartmentID     int64
	DepartmentName   string
	MunicipalityID   int64
	MunicipalityName string
	CreatedAt        time.Time
	TotalCount       int64
}
