// Package auth provides the fiber middleware guarding write endpoints.
package auth

import (
	"github.com/gofiber/fiber/v2"

	iauth "github.com/GoMediaAdmin/GoMediaAdmin/internal/auth"
)

// LocalsPrincipalKey is where the middleware stores the authenticated caller.
const LocalsPrincipalKey = "principal"

// New returns a middleware that rejects requests without a valid credential.
// Missing and malformed credentials get the same answer on purpose.
func New(gateway *iauth.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := gateway.Authenticate(
			c.UserContext(),
			c.Get(fiber.HeaderAuthorization),
			c.Cookies(gateway.CookieName()),
		)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		c.Locals(LocalsPrincipalKey, principal)

		return c.Next()
	}
}

// Principal returns the caller stored by the middleware, nil when the route
// is not guarded.
func Principal(c *fiber.Ctx) *iauth.Principal {
	principal, _ := c.Locals(LocalsPrincipalKey).(*iauth.Principal)
	return principal
}
