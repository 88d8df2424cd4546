package serverutils

import (
	"educonnect-be/internal/pkg/apperror"
	"educonnect-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts every error escaping a handler into the
// `{success:false, error}` envelope. Nothing else crosses the boundary;
// upstream/provider detail is logged server-side only.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := apperror.StatusCode(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("http", "request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		message := err.Error()
		if apperror.KindOf(err) == apperror.KindStoreError {
			message = "Server error"
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}
