package gateway

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const contextUserIDKey = "gateway_user_id"

// AuthRequired gates every data route. A missing or malformed Authorization
// header is rejected before the credential store is contacted; only a
// well-formed bearer value triggers the remote lookup.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return apiError(c, fiber.StatusUnauthorized, "missing or invalid Authorization header")
	}

	userID, err := handler.auth.VerifyToken(c.UserContext(), token)
	if err != nil {
		return failWith(c, err)
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(contextUserIDKey).(uint)
	return userID, ok
}
