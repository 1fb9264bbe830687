package repository

import "github.com/jmontoya/directorio-usuarios/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste un nuevo usuario y rellena ID y CreatedAt asignados por el store.
	Create(user *entity.User) error
	// Search devuelve la página solicitada de la proyección denormalizada y el
	// total de filas que coinciden con el término (válido aunque la página esté vacía).
	Search(term string, page, pageSize int) ([]entity.UserListItem, int64, error)
	// GetByID devuelve (nil, nil) si no existe el id.
	GetByID(id int64) (*entity.User, error)
	// Update reemplaza todos los campos mutables; domain.ErrUserNotFound si el id no existe.
	Update(user *entity.User) error
	// Delete elimina por id; borrar un id inexistente no es error.
	Delete(id int64) error
}
