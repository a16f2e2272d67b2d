package controller

import (
	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITagController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type tagController struct {
	tagService service.ITagService
}

func NewTagController(tagService service.ITagService) ITagController {
	return &tagController{tagService: tagService}
}

func (c *tagController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/tags")
	h.Get("", c.List)
	h.Post("", auth, c.Create)
	h.Post("/generate", auth, c.Generate)
	h.Delete("/:id", auth, c.Delete)
}

func (c *tagController) List(ctx *fiber.Ctx) error {
	res, err := c.tagService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tags", res))
}

func (c *tagController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	var req dto.TagRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tagService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create tag", res))
}

func (c *tagController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.BadRequest("Invalid tag id")
	}

	if err := c.tagService.Delete(ctx.Context(), userId, uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete tag", nil))
}

func (c *tagController) Generate(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	res, err := c.tagService.GenerateDefaults(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Default tags generated", res))
}
