package usecase

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/chilaquiles-api/internal/application/dto"
	"github.com/jhoicas/chilaquiles-api/internal/application/validation"
	"github.com/jhoicas/chilaquiles-api/internal/domain"
	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
)

// MenuItemUseCase casos de uso CRUD para los platos del menú. Cualquier usuario
// autenticado puede crear y editar; no hay control de propietario.
type MenuItemUseCase struct {
	repo repository.MenuItemRepository
}

// NewMenuItemUseCase construye el caso de uso.
func NewMenuItemUseCase(repo repository.MenuItemRepository) *MenuItemUseCase {
	return &MenuItemUseCase{repo: repo}
}

// List aplica filtros y paginación (page >= 1, offset = (page-1) × pageSize).
func (uc *MenuItemUseCase) List(ctx context.Context, q dto.MenuItemQuery) ([]dto.MenuItemResponse, error) {
	page := q.Page
	page.Normalize()
	list, err := uc.repo.List(ctx, entity.MenuItemFilter{
		SalsaType:       q.SalsaType,
		Protein:         q.Protein,
		Spiciness:       q.Spiciness,
		IncludeInactive: q.IncludeInactive,
		Limit:           page.PageSize,
		Offset:          page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MenuItemResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMenuItemResponse(m))
	}
	return out, nil
}

// GetByID obtiene un plato por id, esté activo o no.
func (uc *MenuItemUseCase) GetByID(ctx context.Context, id int64) (*dto.MenuItemResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := toMenuItemResponse(m)
	return &out, nil
}

// Create valida los campos requeridos y devuelve el id generado. Si la validación
// falla no se ejecuta ningún insert.
func (uc *MenuItemUseCase) Create(ctx context.Context, in dto.MenuItemRequest) (int64, error) {
	item, err := fromMenuItemRequest(in)
	if err != nil {
		return 0, err
	}
	return uc.repo.Create(ctx, item)
}

// Update reescribe el plato; ErrNotFound si el id no existe.
func (uc *MenuItemUseCase) Update(ctx context.Context, id int64, in dto.MenuItemRequest) error {
	item, err := fromMenuItemRequest(in)
	if err != nil {
		return err
	}
	item.ID = id
	return uc.repo.Update(ctx, item)
}

// Delete baja lógica.
func (uc *MenuItemUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, false)
}

// Restore reactiva un plato dado de baja.
func (uc *MenuItemUseCase) Restore(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, true)
}

func fromMenuItemRequest(in dto.MenuItemRequest) (*entity.MenuItem, error) {
	item := &entity.MenuItem{
		Name:      validation.Clean(string(in.Name)),
		SalsaType: validation.Clean(string(in.SalsaType)),
		Protein:   validation.Clean(string(in.Protein)),
		Spiciness: int(in.Spiciness),
		Price:     in.Price.Decimal,
	}
	if validation.AnyBlank(item.Name, item.SalsaType, item.Protein) {
		return nil, domain.ErrInvalidInput
	}
	return item, nil
}

func toMenuItemResponse(m *entity.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:        m.ID,
		Name:      m.Name,
		SalsaType: m.SalsaType,
		Protein:   m.Protein,
		Spiciness: m.Spiciness,
		Price:     json.Number(m.Price.StringFixed(2)),
		CreatedAt: m.CreatedAt,
		IsActive:  m.IsActive,
	}
}
