package controller

import (
	"educonnect-be/internal/dto"
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/internal/pkg/serverutils"
	"educonnect-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler)
	ListChats(ctx *fiber.Ctx) error
	GetChat(ctx *fiber.Ctx) error
	SaveChat(ctx *fiber.Ctx) error
	DeleteChat(ctx *fiber.Ctx) error
	DeleteAllChats(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService      service.IChatService
	assistantService service.IAssistantService
}

func NewChatController(chatService service.IChatService, assistantService service.IAssistantService) IChatController {
	return &chatController{
		chatService:      chatService,
		assistantService: assistantService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler) {
	r.Post("/chat", authMiddleware, c.Complete)

	h := r.Group("/chats", authMiddleware)
	h.Get("", c.ListChats)
	h.Post("/save", c.SaveChat)
	h.Delete("", c.DeleteAllChats)
	h.Get("/:id", c.GetChat)
	h.Delete("/:id", c.DeleteChat)
}

// chatIdParam parses the :id route segment. A malformed id maps to 404
// rather than 400: a non-uuid id can never name an existing chat.
func chatIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NotFound("Chat not found")
	}
	return id, nil
}

func (c *chatController) ListChats(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	chats, err := c.chatService.ListChats(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"chats":   chats,
	})
}

func (c *chatController) GetChat(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)
	chatId, err := chatIdParam(ctx)
	if err != nil {
		return err
	}

	chat, err := c.chatService.GetChat(ctx.Context(), userId, chatId)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"chat":    chat,
	})
}

func (c *chatController) SaveChat(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	var req dto.SaveChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	chat, err := c.chatService.SaveChat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"chat":    chat,
	})
}

func (c *chatController) DeleteChat(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)
	chatId, err := chatIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.chatService.DeleteChat(ctx.Context(), userId, chatId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Chat deleted successfully",
	})
}

func (c *chatController) DeleteAllChats(ctx *fiber.Ctx) error {
	userId := serverutils.UserIdFromLocals(ctx)

	if err := c.chatService.DeleteAllChats(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "All chats deleted successfully",
	})
}

func (c *chatController) Complete(ctx *fiber.Ctx) error {
	var req dto.CompleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("Invalid request body")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.assistantService.Complete(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"success":   true,
		"content":   res.Content,
		"timestamp": res.Timestamp,
	})
}
