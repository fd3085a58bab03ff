package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/chilaquiles-api/internal/domain"
	"github.com/jhoicas/chilaquiles-api/internal/domain/entity"
	"github.com/jhoicas/chilaquiles-api/internal/domain/repository"
)

var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

const menuItemColumns = `id, name, salsa_type, protein, spiciness, price, created_at, is_active`

// MenuItemRepo implementación del puerto MenuItemRepository sobre la tabla chilaquiles.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository construye el adaptador de persistencia para platos. Pasar pool o tx.
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

// Create inserta el plato activo con created_at = now() y devuelve el id generado.
func (r *MenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) (int64, error) {
	query := `
		INSERT INTO chilaquiles (name, salsa_type, protein, spiciness, price, created_at, is_active)
		VALUES ($1, $2, $3, $4, $5, now(), TRUE)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		item.Name, item.SalsaType, item.Protein, item.Spiciness, item.Price,
	).Scan(&id)
	if err != nil {
		return 0, writeError("insert menu item", err)
	}
	return id, nil
}

// GetByID obtiene un plato por ID sin importar is_active.
func (r *MenuItemRepo) GetByID(ctx context.Context, id int64) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.q.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM chilaquiles WHERE id = $1`, id).Scan(
		&m.ID, &m.Name, &m.SalsaType, &m.Protein, &m.Spiciness, &m.Price, &m.CreatedAt, &m.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &m, nil
}

// List aplica los filtros de igualdad y la paginación, ordenando por id ascendente.
func (r *MenuItemRepo) List(ctx context.Context, filter entity.MenuItemFilter) ([]*entity.MenuItem, error) {
	query, args := buildMenuItemListQuery(filter)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.MenuItem, 0)
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.SalsaType, &m.Protein, &m.Spiciness, &m.Price, &m.CreatedAt, &m.IsActive); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update reescribe los campos editables del plato.
func (r *MenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE chilaquiles SET name = $1, salsa_type = $2, protein = $3, spiciness = $4, price = $5
		WHERE id = $6`
	cmd, err := r.q.Exec(ctx, query,
		item.Name, item.SalsaType, item.Protein, item.Spiciness, item.Price, item.ID,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if cmd.RowsAffected() != 1 {
		return domain.ErrNotFound
	}
	return nil
}

// SetActive marca la baja lógica (false) o la restaura (true).
func (r *MenuItemRepo) SetActive(ctx context.Context, id int64, active bool) error {
	cmd, err := r.q.Exec(ctx, `UPDATE chilaquiles SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("set menu item active: %w", err)
	}
	if cmd.RowsAffected() != 1 {
		return domain.ErrNotFound
	}
	return nil
}

// buildMenuItemListQuery arma el SELECT con el predicado de is_active explícito
// y un placeholder por cada filtro presente.
func buildMenuItemListQuery(f entity.MenuItemFilter) (string, []any) {
	var where []string
	var args []any
	bind := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if !f.IncludeInactive {
		where = append(where, "is_active = TRUE")
	}
	if f.SalsaType != "" {
		bind("salsa_type = $%d", f.SalsaType)
	}
	if f.Protein != "" {
		bind("protein = $%d", f.Protein)
	}
	if f.Spiciness != nil {
		bind("spiciness = $%d", *f.Spiciness)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + menuItemColumns + ` FROM chilaquiles`)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	args = append(args, f.Limit, f.Offset)
	fmt.Fprintf(&sb, " ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return sb.String(), args
}
