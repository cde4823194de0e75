package http

import (
	"strings"

	"saarthi/internal/controllers"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

const localsUserID = "userID"

type Middleware struct {
	appName string
	fiber   *fiber.App

	authController controllers.AuthCtrl
}

func NewMiddleware(appName string, fiber *fiber.App, auth controllers.AuthCtrl) *Middleware {
	return &Middleware{
		appName:        appName,
		fiber:          fiber,
		authController: auth,
	}
}

func (m *Middleware) useMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}

// auth resolves the bearer token through the auth collaborator and
// stores the user id on the request context.
func (m *Middleware) auth(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if token == "" {
		token = c.Query("token")
	}

	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	userID, err := m.authController.VerifyToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals(localsUserID, userID)

	return c.Next()
}
