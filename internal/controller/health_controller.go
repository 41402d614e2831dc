package controller

import (
	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
}

type healthController struct{}

func NewHealthController() IHealthController {
	return &healthController{}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.root)
	r.Get("/healthz", c.healthz)
}

func (c *healthController) root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "API Budaya Aceh & Analisis Sentimen sedang berjalan",
	})
}

func (c *healthController) healthz(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
