package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/chilaquiles-api/internal/domain"
	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// MenuItemRepo almacén de platos en memoria con la misma semántica de filtros y
// paginación que el adaptador de postgres.
type MenuItemRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]entity.MenuItem
	now    func() time.Time
}

// NewMenuItemRepository crea un almacén vacío.
func NewMenuItemRepository() *MenuItemRepo {
	return &MenuItemRepo{rows: make(map[int64]entity.MenuItem), now: time.Now}
}

// Create inserta un plato activo y devuelve su id.
func (r *MenuItemRepo) Create(_ context.Context, item *entity.MenuItem) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	row := *item
	row.ID = r.nextID
	row.CreatedAt = r.now().UTC()
	row.IsActive = true
	r.rows[row.ID] = row
	return row.ID, nil
}

// GetByID devuelve el plato sin filtrar por is_active; nil si no existe.
func (r *MenuItemRepo) GetByID(_ context.Context, id int64) (*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// List filtra, ordena por id y aplica offset/limit.
func (r *MenuItemRepo) List(_ context.Context, f entity.MenuItemFilter) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]*entity.MenuItem, 0)
	for _, row := range r.rows {
		if !matches(row, f) {
			continue
		}
		m := row
		matched = append(matched, &m)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if f.Offset < 0 || f.Offset >= len(matched) {
		return []*entity.MenuItem{}, nil
	}
	end := len(matched)
	if f.Limit > 0 && f.Limit < end-f.Offset {
		end = f.Offset + f.Limit
	}
	return matched[f.Offset:end], nil
}

// Update reemplaza los campos editables del plato.
func (r *MenuItemRepo) Update(_ context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	row.Name = item.Name
	row.SalsaType = item.SalsaType
	row.Protein = item.Protein
	row.Spiciness = item.Spiciness
	row.Price = item.Price
	r.rows[item.ID] = row
	return nil
}

// SetActive marca el plato como activo o inactivo.
func (r *MenuItemRepo) SetActive(_ context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	row.IsActive = active
	r.rows[id] = row
	return nil
}

func matches(m entity.MenuItem, f entity.MenuItemFilter) bool {
	if !f.IncludeInactive && !m.IsActive {
		return false
	}
	if f.SalsaType != "" && m.SalsaType != f.SalsaType {
		return false
	}
	if f.Protein != "" && m.Protein != f.Protein {
		return false
	}
	if f.Spiciness != nil && m.Spiciness != *f.Spiciness {
		return false
	}
	return true
}
