package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"law-agent-be/internal/pkg/logger"
	"law-agent-be/internal/repository/contract"
)

// ErrorHandlerMiddleware converts errors returned by controllers into
// JSON error envelopes. An AppError keeps its status and kind;
// everything else becomes a generic 500 with no internal detail leaked.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if errors.Is(err, contract.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse(fiber.StatusNotFound, KindSessionNotFound, err.Error()))
		}
		if errors.Is(err, contract.ErrInteractionNotFound) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse(fiber.StatusNotFound, KindNotFound, err.Error()))
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(ErrorResponse(appErr.Code, appErr.Kind, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			kind := KindInvalidInput
			if fiberErr.Code >= 500 {
				kind = KindInternalError
			}
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, kind, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, KindInternalError, "internal server error"))
	}
}
