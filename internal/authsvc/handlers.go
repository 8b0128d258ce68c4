// Package authsvc is the credential store's HTTP surface: registration,
// login and bearer-token verification.
package authsvc

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfield/habitloop/internal/services"
)

type Handler struct {
	auth *services.AuthService
}

func NewHandler(auth *services.AuthService) *Handler {
	return &Handler{auth: auth}
}

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "username and password required")
	}

	user, err := handler.auth.Register(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return apiError(c, fiber.StatusBadRequest, "username already exists")
		}
		return failWith(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "username and password required")
	}

	token, user, err := handler.auth.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return failWith(c, err)
	}

	return c.JSON(fiber.Map{
		"token":    token.Token,
		"userId":   user.ID,
		"username": user.Username,
	})
}

// VerifyToken accepts the token either as a bearer header or a ?token=
// query parameter (header wins), matching the consumed contract.
func (handler *Handler) VerifyToken(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		token = strings.TrimSpace(c.Query("token"))
	}
	if token == "" {
		return apiError(c, fiber.StatusBadRequest, "token required")
	}

	userID, err := handler.auth.VerifyToken(token)
	if err != nil {
		if errors.Is(err, services.ErrTokenNotFound) {
			return apiError(c, fiber.StatusUnauthorized, "invalid token")
		}
		return failWith(c, err)
	}

	return c.JSON(fiber.Map{"userId": userID})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
