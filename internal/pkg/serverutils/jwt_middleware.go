package serverutils

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// UserVerifier confirms the token subject still exists; tokens outlive
// account deletions otherwise.
type UserVerifier interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// NewJwtMiddleware authenticates requests. The token is read from the
// `token` cookie first (browser clients, credentials: include) and falls
// back to an Authorization bearer header. Verified user ids are cached so
// the store is not hit on every request.
func NewJwtMiddleware(verifier UserVerifier) fiber.Handler {
	userCache := gocache.New(5*time.Minute, 10*time.Minute)

	return func(ctx *fiber.Ctx) error {
		tokenStr := ctx.Cookies("token")
		if tokenStr == "" {
			authHeader := ctx.Get("Authorization")
			if len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
				tokenStr = authHeader[7:]
			}
		}
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authorized, no token"})
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authorized, token failed"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid claims"})
		}

		userIdStr, _ := claims["user_id"].(string)
		userId, err := uuid.Parse(userIdStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Invalid claims"})
		}

		if _, cached := userCache.Get(userIdStr); !cached {
			exists, err := verifier.Exists(ctx.Context(), userId)
			if err != nil || !exists {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "error": "Not authorized, token failed"})
			}
			userCache.Set(userIdStr, struct{}{}, gocache.DefaultExpiration)
		}

		ctx.Locals("user_id", userIdStr)
		return ctx.Next()
	}
}

// UserIdFromLocals returns the authenticated user id set by the middleware.
func UserIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
