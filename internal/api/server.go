package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"meetreport/internal/config"
	"meetreport/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server wires the fiber app to the compiler.
type Server struct {
	app    *fiber.App
	cfg    *config.Config
	logger *slog.Logger
}

// New builds the app and registers routes. It does not listen.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	s := &Server{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "api"),
	}
	s.app = fiber.New(fiber.Config{
		AppName:               "meetreport",
		BodyLimit:             cfg.BodyLimitBytes(),
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(cors.New())
	s.app.Use(s.requestID)

	s.app.Get("/health", s.health)
	group := s.app.Group("/api")
	group.Post("/timeline", s.timeline)
	group.Post("/report", s.report)
	return s
}

// App returns the underlying fiber app, for tests and embedding.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on the configured bind address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Listen(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("bind", s.cfg.Server.Bind))
		errCh <- s.app.Listen(s.cfg.Server.Bind)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		s.logger.Info("http server stopped")
		return nil
	}
}
