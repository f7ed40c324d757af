// Package admin gates the admin panel behind the single configured
// credential pair. There is no user table and no session store; a signed
// token is the whole login state, mirroring the panel's logged-in flag.
package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	username  string
	password  string
	jwtSecret string
}

func NewHandler(username, password, jwtSecret string) *Handler {
	return &Handler{username: username, password: password, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/login", h.login)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.Username != h.username || payload.Password != h.password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "ভুল ইউজারনেম বা পাসওয়ার্ড"})
	}

	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   signed,
	})
}
