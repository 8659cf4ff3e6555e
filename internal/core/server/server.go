package server

import (
	"fmt"
	"strings"
	"time"

	"memorial-banner/internal/core/config"
	"memorial-banner/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "memorial-banner/docs/swagger"
)

const (
	// CSRFHeader is the request header carrying the anti-forgery token.
	CSRFHeader = "X-CSRFToken"
	// CSRFCookie is the cookie the token is double-submitted through.
	CSRFCookie = "csrftoken"
	// csrfContextKey is where the middleware leaves the current token.
	csrfContextKey = "csrf"
)

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server with request ids, access logs, anti-forgery protection and API docs.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "memorial-banner",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "header:" + CSRFHeader,
		CookieName:     CSRFCookie,
		CookieSameSite: "Lax",
		CookieSecure:   cfg.CSRF.CookieSecure,
		Expiration:     time.Hour,
		ContextKey:     csrfContextKey,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/swagger")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Get().Warn("Rejected request without valid anti-forgery token",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "Forbidden: invalid or missing CSRF token",
				"ray_id": RayID(c),
			})
		},
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/csrf", issueToken)

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// issueToken handles GET /csrf.
// @Summary Issue an anti-forgery token
// @Description Sets the csrftoken cookie and returns the same token for the X-CSRFToken header.
// @Tags Security
// @Produce json
// @Success 200 {object} map[string]string
// @Router /csrf [get]
func issueToken(c *fiber.Ctx) error {
	token, _ := c.Locals(csrfContextKey).(string)
	return c.JSON(fiber.Map{
		"csrf_token": token,
		"header":     CSRFHeader,
	})
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}
