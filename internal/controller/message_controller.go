package controller

import (
	"ai-session-be/internal/pkg/serverutils"
	"ai-session-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router, identityMW fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
}

type messageController struct {
	service service.IMessageService
}

func NewMessageController(service service.IMessageService) IMessageController {
	return &messageController{service: service}
}

func (c *messageController) RegisterRoutes(r fiber.Router, identityMW fiber.Handler) {
	h := r.Group("/messages")
	h.Use(identityMW)
	h.Get("", c.GetAll)
}

func (c *messageController) GetAll(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(string)

	res, err := c.service.GetAllByOwner(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all messages", res))
}
