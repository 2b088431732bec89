package app

import (
	"fmt"
	"strings"

	"jobmatcher/internal/config"
	"jobmatcher/internal/delivery/http/handler"
	"jobmatcher/internal/delivery/http/middleware"
	"jobmatcher/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: int(cfg.Upload.MaxUploadSize),
	})

	registerGlobalMiddleware(f, container)
	registerRoutes(f, container)

	cleanup := func() error { return container.Close() }
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	f.Use(middleware.NewErrorMiddleware(c.Log).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Log).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	registry := &routes.Registry{
		Health:          handler.NewHealthHandler(c.DB, c.Redis),
		Jobs:            handler.NewJobHandler(c.Jobs),
		Candidates:      handler.NewCandidateHandler(c.Candidates),
		Match:           handler.NewMatchHandler(c.Matching),
		Recommendations: handler.NewRecommendationHandler(c.Recommendations),
		Parse:           handler.NewParseHandler(c.Parse),
	}
	registry.Register(f)
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
