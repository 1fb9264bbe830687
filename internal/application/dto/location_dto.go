package dto

// CountryResponse país del catálogo.
type CountryResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IsoCode string `json:"iso_code"`
}

// DepartmentResponse departamento de un país.
type DepartmentResponse struct {
	ID        int64  `json:"id"`
	CountryID int64  `json:"country_id"`
	Name      string `json:"name"`
}

// MunicipalityResponse municipio de un departamento.
type MunicipalityResponse struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"department_id"`
	Name         string `json:"name"`
}
