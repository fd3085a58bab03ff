package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un plato de chilaquiles del menú (tabla chilaquiles).
type MenuItem struct {
	ID        int64
	Name      string
	SalsaType string
	Protein   string
	Spiciness int
	Price     decimal.Decimal
	CreatedAt time.Time
	IsActive  bool
}

// MenuItemFilter filtros de igualdad y paginación para listar platos.
// Los campos nil o vacíos no filtran.
type MenuItemFilter struct {
	SalsaType       string
	Protein         string
	Spiciness       *int
	IncludeInactive bool
	Limit           int
	Offset          int
}
