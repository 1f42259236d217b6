package controller

import (
	"law-agent-be/internal/dto"
	"law-agent-be/internal/pkg/serverutils"
	"law-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sessions")
	h.Post("", c.Create)
	h.Get("/:id/summary", c.Summary)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidInput("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !req.UserType.IsValid() {
		return serverutils.NewInvalidInput("unsupported user_type: " + string(req.UserType))
	}

	res, err := c.sessionService.CreateSession(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Summary(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")

	res, err := c.sessionService.GetSessionSummary(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session summary", res))
}
