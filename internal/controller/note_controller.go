package controller

import (
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/pkg/apperr"
	"notes-be/internal/pkg/exporter"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	ListActive(ctx *fiber.Ctx) error
	ListArchived(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ArchiveAdd(ctx *fiber.Ctx) error
	ArchiveRemove(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{noteService: noteService}
}

func (c *noteController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/notes")
	// Static segments before the :id wildcard.
	h.Get("/archives", auth, c.ListArchived)
	h.Get("/export", auth, c.Export)
	h.Patch("/archive/add/:id", auth, c.ArchiveAdd)
	h.Patch("/archive/remove/:id", auth, c.ArchiveRemove)
	h.Get("", auth, c.ListActive)
	h.Post("", auth, c.Create)
	h.Get("/:id", c.Show) // open read, mutations below require the owner
	h.Put("/:id", auth, c.Update)
	h.Delete("/:id", auth, c.Delete)
}

func noteIdParam(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid note id")
	}
	return uint(id), nil
}

func (c *noteController) ListActive(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	res, err := c.noteService.ListActive(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) ListArchived(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	res, err := c.noteService.ListArchived(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list archived notes", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Success create note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) ArchiveAdd(ctx *fiber.Ctx) error {
	return c.setArchive(ctx, true)
}

func (c *noteController) ArchiveRemove(ctx *fiber.Ctx) error {
	return c.setArchive(ctx, false)
}

func (c *noteController) setArchive(ctx *fiber.Ctx, archived bool) error {
	userId := serverutils.CallerId(ctx)

	id, err := noteIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.SetArchive(ctx.Context(), userId, id, archived); err != nil {
		return err
	}

	message := "Note archived"
	if !archived {
		message = "Note unarchived"
	}
	return ctx.JSON(serverutils.SuccessResponse[any](message, nil))
}

func (c *noteController) Export(ctx *fiber.Ctx) error {
	userId := serverutils.CallerId(ctx)

	workbook, err := c.noteService.Export(ctx.Context(), userId)
	if err != nil {
		return err
	}

	filename := exporter.ExportFilename(time.Now())
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return ctx.Send(workbook)
}
