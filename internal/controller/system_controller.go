package controller

import (
	"law-agent-be/internal/pkg/serverutils"
	"law-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Info(ctx *fiber.Ctx) error
	DomainAnalytics(ctx *fiber.Ctx) error
}

type systemController struct {
	systemService    service.ISystemService
	analyticsService service.IAnalyticsService
}

func NewSystemController(systemService service.ISystemService, analyticsService service.IAnalyticsService) ISystemController {
	return &systemController{
		systemService:    systemService,
		analyticsService: analyticsService,
	}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Get("/system/health", c.Health)
	r.Get("/system/info", c.Info)
	r.Get("/analytics/domains", c.DomainAnalytics)
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.systemService.Health(ctx.Context()))
}

func (c *systemController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get system info", c.systemService.Info(ctx.Context())))
}

func (c *systemController) DomainAnalytics(ctx *fiber.Ctx) error {
	res, err := c.analyticsService.DomainUsage(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get domain analytics", res))
}
