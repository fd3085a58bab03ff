package repository

import (
	"context"

	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
)

// MenuItemRepository define el puerto de persistencia para MenuItem (DIP).
// Update y SetActive devuelven domain.ErrNotFound si no afectan exactamente una fila.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.MenuItem, error)
	List(ctx context.Context, filter entity.MenuItemFilter) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	SetActive(ctx context.Context, id int64, active bool) error
}
