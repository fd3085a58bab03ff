package http

import "github.com/gofiber/fiber/v2"

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status string `json:"status"`
	Driver string `json:"driver"`
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func Health(driver string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{Status: "ok", Driver: driver})
	}
}
