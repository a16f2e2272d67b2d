package controller

import "github.com/gofiber/fiber/v2"

type IPingController interface {
	RegisterRoutes(r fiber.Router)
}

type pingController struct{}

func NewPingController() IPingController {
	return &pingController{}
}

func (c *pingController) RegisterRoutes(r fiber.Router) {
	r.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ping": "pong"})
	})
}
