package repository

import (
	"context"

	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos de consulta devuelven (nil, nil) cuando la fila no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.User, error)
	// Update aplica los cambios no nil; el rol siempre se escribe.
	Update(ctx context.Context, id int64, changes UserChanges) error
	SetActive(ctx context.Context, id int64, active bool) error
}

// UserChanges cambios administrativos sobre un usuario.
type UserChanges struct {
	FullName *string
	Username *string
	Role     string
}
