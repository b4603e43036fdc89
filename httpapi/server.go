package httpapi

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	recoverware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/clc-tz/legalbridge-backend/auth"
	"github.com/clc-tz/legalbridge-backend/content"
)

// Logger is the leveled logger the server reports through
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Config carries the transport settings the server needs
type Config interface {
	GetAddr() string
	GetCORSOrigins() []string
}

// Server wires the auth and content services behind a fiber app
type Server struct {
	app     *fiber.App
	cfg     Config
	authCfg auth.Config
	auther  auth.Authenticator
	repo    auth.RepositoryManager
	manager content.Manager
	web     *content.WebAggregator
	logger  Logger
}

func NewServer(
	cfg Config,
	authCfg auth.Config,
	auther auth.Authenticator,
	repo auth.RepositoryManager,
	manager content.Manager,
	web *content.WebAggregator,
) *Server {
	s := &Server{
		cfg:     cfg,
		authCfg: authCfg,
		auther:  auther,
		repo:    repo,
		manager: manager,
		web:     web,
		logger:  defLogger{},
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "legalbridge-backend",
		ErrorHandler: s.errorHandler,
	})

	origins := cfg.GetCORSOrigins()

	s.app.Use(recoverware.New())
	s.app.Use(fiberlogger.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders: "Authorization,Content-Type,Accept,Origin,X-Requested-With",
		// Credentials cannot be combined with a wildcard origin
		AllowCredentials: !slices.Contains(origins, "*"),
	}))

	s.registerRoutes()

	return s
}

func (s *Server) WithLogger(logger Logger) *Server {
	s.logger = logger
	return s
}

// App exposes the underlying fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen() error {
	s.logger.Info("http server listening", "addr", s.cfg.GetAddr())
	return s.app.Listen(s.cfg.GetAddr())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) registerRoutes() {
	s.app.Get("/status", s.statusShow)

	s.registerAuthRoutes(s.app.Group("/auth"))
	s.registerContentRoutes(s.app)
	s.registerWebRoutes(s.app.Group("/webpages"))
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) { fmt.Println(append([]any{format}, args...)...) }
func (d defLogger) Warn(format string, args ...any)  { fmt.Println(append([]any{format}, args...)...) }
func (d defLogger) Info(format string, args ...any)  { fmt.Println(append([]any{format}, args...)...) }
func (d defLogger) Debug(format string, args ...any) { fmt.Println(append([]any{format}, args...)...) }
