package app

import (
	"context"
	"fmt"
	"strings"

	"career-guide/internal/config"
	"career-guide/internal/delivery/http/handler"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/delivery/http/routes"
	v1 "career-guide/internal/delivery/http/routes/v1"
	"career-guide/internal/logger"
	"career-guide/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// bodyLimit leaves room for a 5MB resume plus multipart framing.
const bodyLimit = 8 * 1024 * 1024

type App struct {
	Fiber     *fiber.App
	Container *Container
}

type Options struct {
	Migrate bool
	Seed    bool
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: bodyLimit,
	})

	registerGlobalMiddleware(f)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects dependencies, prepares the schema as requested and starts
// the websocket hub. The returned cleanup stops the hub and closes connections.
func Bootstrap(ctx context.Context, cfg config.Config, opts Options) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	if opts.Migrate {
		if err := c.Migrate(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}
	if opts.Seed {
		if err := c.Seed(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger.Component("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Component("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	handlers := v1.Handlers{
		Health:         handler.NewHealthHandler(c.DB, c.Cache),
		Account:        handler.NewAccountHandler(c.Accounts),
		Profile:        handler.NewProfileHandler(c.Profiles),
		Recommendation: handler.NewRecommendationHandler(c.Recommendations),
		Resume:         handler.NewResumeHandler(c.Resumes),
		Application:    handler.NewApplicationHandler(c.Applications),
		Catalog:        handler.NewCatalogHandler(c.Catalog),
		Chat:           handler.NewChatHandler(c.Chat),
		WS:             ws.NewHandler(c.Hub, c.Chat, c.Config.Chat, c.Random, logger.Component("ws")),
	}
	routes.NewRegistry(handlers).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
