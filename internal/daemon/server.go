package daemon

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"confsync/internal/check"
	"confsync/internal/config"
	"confsync/internal/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Server answers status requests over HTTP. Every request runs a fresh
// comparison; nothing is cached between requests.
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	port   int
	stopCh chan struct{}
	errCh  chan error
}

func NewServer(cfg *config.Config, port int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:   e,
		cfg:    cfg,
		port:   port,
		stopCh: make(chan struct{}, 1),
		errCh:  make(chan error, 1),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/status", s.handleStatus)
	s.echo.GET("/report", s.handleReport)
	s.echo.POST("/stop", s.handleStop)
}

func (s *Server) Start() {
	go func() {
		addr := "127.0.0.1:" + strconv.Itoa(s.port)
		logger.Log.Info("status server started",
			zap.String("addr", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("status server error", zap.Error(err))
			s.errCh <- err
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) StopCh() <-chan struct{} {
	return s.stopCh
}

// Errors delivers the error that made the listener stop, such as the port
// already being in use. A clean shutdown sends nothing.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) handleStatus(c echo.Context) error {
	payload, err := check.Run(s.cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, payload)
	}

	return c.JSON(http.StatusOK, payload)
}

func (s *Server) handleReport(c echo.Context) error {
	report, err := check.Inspect(s.cfg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleStop(c echo.Context) error {
	select {
	case s.stopCh <- struct{}{}:
	default:
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "stopping"})
}
