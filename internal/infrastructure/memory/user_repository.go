package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/chilaquiles-api/internal/domain"
	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo almacén de usuarios en memoria. Username es único, igual que en la tabla users.
type UserRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]entity.User
}

// NewUserRepository crea un almacén vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{rows: make(map[int64]entity.User)}
}

// Create inserta un usuario; ErrUsernameExists si el username ya está tomado.
func (r *UserRepo) Create(_ context.Context, user *entity.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.usernameTaken(user.Username, 0) {
		return 0, domain.ErrUsernameExists
	}
	r.nextID++
	row := *user
	row.ID = r.nextID
	r.rows[row.ID] = row
	return row.ID, nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// GetByUsername busca por username exacto; nil si no existe.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.Username == username {
			u := row
			return &u, nil
		}
	}
	return nil, nil
}

// List devuelve los usuarios ordenados por id.
func (r *UserRepo) List(_ context.Context, includeInactive bool) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.User, 0, len(r.rows))
	for _, row := range r.rows {
		if !includeInactive && !row.IsActive {
			continue
		}
		u := row
		list = append(list, &u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Update aplica los cambios de perfil y rol.
func (r *UserRepo) Update(_ context.Context, id int64, changes repository.UserChanges) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	if changes.Username != nil {
		if r.usernameTaken(*changes.Username, id) {
			return domain.ErrUsernameExists
		}
		row.Username = *changes.Username
	}
	if changes.FullName != nil {
		row.FullName = *changes.FullName
	}
	row.Role = changes.Role
	r.rows[id] = row
	return nil
}

// SetActive activa o desactiva al usuario.
func (r *UserRepo) SetActive(_ context.Context, id int64, active bool) error {
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

func (r *UserRepo) usernameTaken(username string, exceptID int64) bool {
	for id, row := range r.rows {
		if id != exceptID && row.Username == username {
			return true
		}
	}
	return false
}
