package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"vendo/config"
	"vendo/internal/delivery"
	apimiddleware "vendo/internal/delivery/api/middleware"
	"vendo/internal/delivery/api/router"
	"vendo/internal/delivery/api/validator"
	"vendo/internal/delivery/middleware"
	"vendo/internal/domain/lifecycle"
	"vendo/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	addr   string
	idle   time.Duration
	logger *slog.Logger
	engine *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// routeRegistrar mounts the API routes on an engine.
type routeRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// NewServer builds the API server. Serving begins when Serve is called;
// fx stops it gracefully.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &apiServer{
		addr:   net.JoinHostPort(params.Cfg.HTTP.Host, strconv.Itoa(params.Cfg.HTTP.Port)),
		idle:   params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger: params.Logger,
		engine: newEngine(params.Cfg, params.Logger, router.NewRouter(params.RouterParams)),
	}

	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

// newEngine assembles the middleware chain around the routes. Recover is
// outermost; the request id is assigned before the access log sees the request.
func newEngine(cfg *config.Config, logger *slog.Logger, routes routeRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	routes.RegisterRoutes(e)

	return e
}

// Serve blocks until the listener fails or the server is shut down.
func (s *apiServer) Serve(_ context.Context) error {
	s.logger.Info("Serving vendo API", slog.String("addr", s.addr))

	err := s.engine.StartH2CServer(s.addr, &http2.Server{IdleTimeout: s.idle})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "api server on %s", s.addr)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Draining vendo API", slog.String("addr", s.addr))

	return errors.WithStack(s.engine.Shutdown(ctx))
}
