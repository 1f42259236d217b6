package controller

import (
	"net/url"

	"law-agent-be/internal/dto"
	"law-agent-be/internal/pkg/serverutils"
	"law-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGlossaryController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Term(ctx *fiber.Ctx) error
	DomainTerms(ctx *fiber.Ctx) error
}

type glossaryController struct {
	glossaryService service.IGlossaryService
}

func NewGlossaryController(glossaryService service.IGlossaryService) IGlossaryController {
	return &glossaryController{
		glossaryService: glossaryService,
	}
}

func (c *glossaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/glossary")
	h.Post("/search", c.Search)
	h.Get("/term/:term", c.Term)
	h.Get("/domain/:domain", c.DomainTerms)
}

func (c *glossaryController) Search(ctx *fiber.Ctx) error {
	var req dto.GlossarySearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidInput("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.glossaryService.Search(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search glossary", res))
}

func (c *glossaryController) Term(ctx *fiber.Ctx) error {
	// Multi-word terms arrive percent-encoded in the path.
	term, err := url.PathUnescape(ctx.Params("term"))
	if err != nil {
		return serverutils.NewInvalidInput("malformed term parameter")
	}

	res, err := c.glossaryService.GetTerm(ctx.Context(), term)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get glossary term", res))
}

func (c *glossaryController) DomainTerms(ctx *fiber.Ctx) error {
	domain := ctx.Params("domain")

	res, err := c.glossaryService.GetDomainTerms(ctx.Context(), domain)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get domain terms", res))
}
