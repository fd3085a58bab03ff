package usecase

import (
	"context"

	"github.com/jhoicas/chilaquiles-api/internal/application/auth"
	"github.com/jhoicas/chilaquiles-api/internal/application/dto"
	"github.com/jhoicas/chilaquiles-api/internal/application/validation"
	"github.com/jhoicas/chilaquiles-api/internal/domain"
	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
)

// UserUseCase gestión administrativa de usuarios. Las bajas son lógicas (is_active).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios por id ascendente; includeInactive agrega los dados de baja.
func (uc *UserUseCase) List(ctx context.Context, includeInactive bool) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario con las mismas reglas que el registro público.
func (uc *UserUseCase) Create(ctx context.Context, in dto.RegisterRequest) (int64, error) {
	user, err := auth.NewUser(in)
	if err != nil {
		return 0, err
	}
	existing, err := uc.repo.GetByUsername(ctx, user.Username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrUsernameExists
	}
	return uc.repo.Create(ctx, user)
}

// Update cambia nombre, username y rol. El rol se escribe siempre: ausente o
// desconocido queda en user.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) error {
	changes := repository.UserChanges{Role: entity.NormalizeRole(in.Role)}
	if in.FullName != nil {
		v := validation.Clean(*in.FullName)
		if v == "" {
			return domain.ErrInvalidInput
		}
		changes.FullName = &v
	}
	if in.Username != nil {
		v := validation.Clean(*in.Username)
		if v == "" {
			return domain.ErrInvalidInput
		}
		changes.Username = &v
	}
	return uc.repo.Update(ctx, id, changes)
}

// Deactivate baja lógica.
func (uc *UserUseCase) Deactivate(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, false)
}

// Restore reactiva un usuario dado de baja.
func (uc *UserUseCase) Restore(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, true)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     entity.NormalizeRole(u.Role),
		IsActive: u.IsActive,
	}
}
