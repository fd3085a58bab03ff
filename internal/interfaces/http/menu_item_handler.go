package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chilaquiles-api/internal/application/dto"
	"github.com/jhoicas/chilaquiles-api/internal/application/usecase"
)

// MenuItemHandler CRUD de platos (protegido, cualquier usuario autenticado).
type MenuItemHandler struct {
	uc *usecase.MenuItemUseCase
}

// NewMenuItemHandler construye el handler.
func NewMenuItemHandler(uc *usecase.MenuItemUseCase) *MenuItemHandler {
	return &MenuItemHandler{uc: uc}
}

// List godoc
// @Summary      Listar chilaquiles
// @Tags         chilaquiles
// @Security     Bearer
// @Produce      json
// @Param        salsaType        query  string  false  "Tipo de salsa"
// @Param        protein          query  string  false  "Proteína"
// @Param        spiciness        query  int     false  "Nivel de picor"
// @Param        includeInactive  query  bool    false  "Incluir dados de baja"
// @Param        page             query  int     false  "Página (desde 1)"
// @Param        pageSize         query  int     false  "Tamaño de página"
// @Success      200  {array}   dto.MenuItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/chilaquiles [get]
func (h *MenuItemHandler) List(c *fiber.Ctx) error {
	q := dto.MenuItemQuery{
		SalsaType:       strings.TrimSpace(c.Query("salsaType")),
		Protein:         strings.TrimSpace(c.Query("protein")),
		IncludeInactive: queryBool(c, "includeInactive"),
		Page: dto.PageRequest{
			Page:     c.QueryInt("page", dto.DefaultPage),
			PageSize: c.QueryInt("pageSize", dto.DefaultPageSize),
		},
	}
	if n, err := strconv.Atoi(strings.TrimSpace(c.Query("spiciness"))); err == nil {
		q.Spiciness = &n
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener plato por ID
// @Description  Devuelve el plato aunque esté dado de baja.
// @Tags         chilaquiles
// @Security     Bearer
// @Produce      json
// @Param        id               path   int   true   "ID del plato"
// @Param        includeInactive  query  bool  false  "Aceptado por simetría con el listado"
// @Success      200  {object}  dto.MenuItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chilaquiles/{id} [get]
func (h *MenuItemHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear plato
// @Tags         chilaquiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MenuItemRequest  true  "Datos del plato"
// @Success      200   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chilaquiles [post]
func (h *MenuItemHandler) Create(c *fiber.Ctx) error {
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.CreatedResponse{OK: true, ID: id})
}

// Update godoc
// @Summary      Editar plato
// @Tags         chilaquiles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del plato"
// @Param        body  body  dto.MenuItemRequest  true  "Datos del plato"
// @Success      200   {object}  dto.OKResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/chilaquiles/{id} [put]
func (h *MenuItemHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	var in dto.MenuItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Delete godoc
// @Summary      Dar de baja plato
// @Tags         chilaquiles
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del plato"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chilaquiles/{id} [delete]
func (h *MenuItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// Restore godoc
// @Summary      Restaurar plato
// @Tags         chilaquiles
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del plato"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chilaquiles/{id}/restore [post]
func (h *MenuItemHandler) Restore(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.uc.Restore(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}
