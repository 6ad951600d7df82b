package routes

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	career *handler.CareerHandler
}

func NewRegistry(career *handler.CareerHandler) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		career: career,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.career.RegisterRoutes(api)
}
