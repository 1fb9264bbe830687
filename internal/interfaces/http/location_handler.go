package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jmontoya/directorio-usuarios/internal/application/dto"
	"github.com/jmontoya/directorio-usuarios/internal/application/usecase"
)

// LocationHandler maneja las lecturas del catálogo de ubicaciones.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// Countries GET /api/locations/countries
func (h *LocationHandler) Countries(c *fiber.Ctx) error {
	list, err := h.uc.Countries()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Departments GET /api/locations/departments/:countryId
func (h *LocationHandler) Departments(c *fiber.Ctx) error {
	countryID, err := strconv.ParseInt(c.Params("countryId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "countryId inválido"})
	}
	list, err := h.uc.Departments(countryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Municipalities GET /api/locations/municipalities/:departmentId
func (h *LocationHandler) Municipalities(c *fiber.Ctx) error {
	departmentID, err := strconv.ParseInt(c.Params("departmentId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "departmentId inválido"})
	}
	list, err := h.uc.Municipalities(departmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
