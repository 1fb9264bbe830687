package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmontoya/directorio-usuarios/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC     *usecase.UserUseCase
	LocationUC *usecase.LocationUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Directorio de usuarios
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Catálogo de ubicaciones (selectores en cascada del frontend)
	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/countries", locationHandler.Countries)
	locations.Get("/departments/:countryId", locationHandler.Departments)
	locations.Get("/municipalities/:departmentId", locationHandler.Municipalities)
}
