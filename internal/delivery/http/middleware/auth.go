package middleware

import (
	"strings"

	"videotube/internal/usecases"
	"videotube/pkg/config"
	apierrors "videotube/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

// ViewerKey is the locals key holding the authenticated user's id.
const ViewerKey = "viewerID"

func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies("accessToken"); token != "" {
		return token
	}
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireAuth rejects requests without a valid access token.
func RequireAuth(auth config.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return apierrors.HandleError(c, apierrors.Unauthorized("authentication required"))
		}
		claims, err := usecases.ParseAccessToken(auth, token)
		if err != nil {
			return apierrors.HandleError(c, err)
		}
		c.Locals(ViewerKey, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth resolves the viewer when a token is present but lets
// anonymous requests through. Read endpoints use it for viewer flags.
func OptionalAuth(auth config.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := usecases.ParseAccessToken(auth, token); err == nil {
				c.Locals(ViewerKey, claims.UserID)
			}
		}
		return c.Next()
	}
}

// Viewer returns the authenticated user id, or "" for anonymous requests.
func Viewer(c *fiber.Ctx) string {
	if id, ok := c.Locals(ViewerKey).(string); ok {
		return id
	}
	return ""
}
