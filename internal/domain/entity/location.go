package entity

// Catálogo de ubicaciones (solo lectura para este servicio).

// Country país del catálogo.
type Country struct {
	ID      int64
	Name    string
	IsoCode string
}

// Department departamento de un país.
type Department struct {
	ID        int64
	CountryID int64
	Name      string
}

// Municipality municipio de un departamento.
type Municipality struct {
	ID           int64
	DepartmentID int64
	Name         string
}
