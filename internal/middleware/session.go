package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sharingyatra/yatra-backend/internal/auth"
	"github.com/sharingyatra/yatra-backend/internal/models"
)

// SessionCookie is the name of the cookie carrying the opaque session token.
const SessionCookie = "yatra_sid"

const principalKey = "principal"

// RequireSession is the authorization gate: every protected route passes
// through here. Requests without an active session get 401 and never
// reach the downstream handler.
func RequireSession(sessions *auth.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := sessions.Verify(c.Cookies(SessionCookie))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized: Please log in",
			})
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// PrincipalFrom returns the authenticated principal attached by
// RequireSession, or nil on unprotected routes.
func PrincipalFrom(c *fiber.Ctx) *models.Principal {
	principal, _ := c.Locals(principalKey).(*models.Principal)
	return principal
}
