package dto

import (
	"encoding/json"
	"time"
)

// MenuItemRequest cuerpo de alta y edición de un plato. Los campos aceptan
// tipos JSON laxos (ver FlexString, FlexInt, FlexDecimal).
type MenuItemRequest struct {
	Name      FlexString  `json:"name"`
	SalsaType FlexString  `json:"salsaType"`
	Protein   FlexString  `json:"protein"`
	Spiciness FlexInt     `json:"spiciness"`
	Price     FlexDecimal `json:"price"`
}

// MenuItemQuery filtros y paginación del listado.
type MenuItemQuery struct {
	SalsaType       string
	Protein         string
	Spiciness       *int
	IncludeInactive bool
	Page            PageRequest
}

// MenuItemResponse salida de un plato.
type MenuItemResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	SalsaType string      `json:"salsaType"`
	Protein   string      `json:"protein"`
	Spiciness int         `json:"spiciness"`
	Price     json.Number `json:"price"`
	CreatedAt time.Time   `json:"createdAt"`
	IsActive  bool        `json:"isActive"`
}
