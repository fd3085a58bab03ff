package dto

import "math"

// PageRequest paginación por página (1..n) y tamaño de página.
type PageRequest struct {
	Page     int
	PageSize int
}

// Valores por defecto de paginación.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Normalize aplica los valores por defecto cuando Page o PageSize no son positivos.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
}

// Offset devuelve (Page-1) × PageSize, saturado en math.MaxInt si el producto desborda.
func (p PageRequest) Offset() int {
	skip := p.Page - 1
	if skip <= 0 || p.PageSize <= 0 {
		return 0
	}
	if p.PageSize > math.MaxInt/skip {
		return math.MaxInt
	}
	return skip * p.PageSize
}

// OKResponse respuesta genérica de éxito.
type OKResponse struct {
	OK bool `json:"ok"`
}

// CreatedResponse respuesta de creación con el id generado.
type CreatedResponse struct {
	OK bool  `json:"ok"`
	ID int64 `json:"id"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
