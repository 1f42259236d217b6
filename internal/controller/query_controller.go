package controller

import (
	"law-agent-be/internal/dto"
	"law-agent-be/internal/pkg/serverutils"
	"law-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQueryController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
}

type queryController struct {
	agentService service.IAgentService
}

func NewQueryController(agentService service.IAgentService) IQueryController {
	return &queryController{
		agentService: agentService,
	}
}

func (c *queryController) RegisterRoutes(r fiber.Router) {
	r.Post("/query", c.Query)
	r.Post("/feedback", c.Feedback)
}

func (c *queryController) Query(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidInput("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.UserType != "" && !req.UserType.IsValid() {
		return serverutils.NewInvalidInput("unsupported user_type: " + string(req.UserType))
	}

	res, err := c.agentService.Query(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process query", res))
}

func (c *queryController) Feedback(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidInput("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if !req.Feedback.IsValid() {
		return serverutils.NewInvalidInput("unsupported feedback: " + string(req.Feedback))
	}

	res, err := c.agentService.Feedback(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record feedback", res))
}
