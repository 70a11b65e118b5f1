package controller

import (
	"ai-session-be/internal/dto"
	"ai-session-be/internal/pkg/serverutils"
	"ai-session-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, identityMW fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
	messageService service.IMessageService
}

func NewSessionController(sessionService service.ISessionService, messageService service.IMessageService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
		messageService: messageService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, identityMW fiber.Handler) {
	h := r.Group("/sessions")
	h.Use(identityMW)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Delete(":id", c.Delete)
	h.Get(":id/messages", c.GetMessages)
}

func (c *sessionController) GetAll(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	withUserMessages := ctx.QueryBool("with_user_messages")

	res, err := c.sessionService.GetAll(ctx.Context(), userId, withUserMessages)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all sessions", res))
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Delete(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	idParam := ctx.Params("id")

	// A malformed identifier cannot exist; same outcome as absence.
	if _, err := uuid.Parse(idParam); err != nil {
		return service.ErrNotFound
	}

	if err := c.sessionService.Delete(ctx.Context(), userId, idParam); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *sessionController) GetMessages(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)
	idParam := ctx.Params("id")

	if _, err := uuid.Parse(idParam); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.messageService.GetBySession(ctx.Context(), userId, idParam)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session messages", res))
}
