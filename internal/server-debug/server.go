package serverdebug

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/spa-server/internal/buildinfo"
	"github.com/zestagio/spa-server/internal/logger"
	"github.com/zestagio/spa-server/internal/mode"
)

const (
	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	addr       string      `option:"mandatory" validate:"required,hostname_port"`
	apiSwagger *openapi3.T `option:"mandatory" validate:"required"`
	mode       mode.Mode   `option:"mandatory" validate:"required"`
}

type Server struct {
	lg         *zap.Logger
	srv        *http.Server
	apiSwagger *openapi3.T
	mode       mode.Mode
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	lg := zap.L().Named("server-debug")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency:   true,
		LogRemoteIP:  true,
		LogHost:      true,
		LogMethod:    true,
		LogURIPath:   true,
		LogRequestID: true,
		LogUserAgent: true,
		LogStatus:    true,
		HandleError:  true,
		Skipper: func(eCtx echo.Context) bool {
			return eCtx.Request().Method == http.MethodOptions
		},
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			lg.Debug("request",
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("host", v.Host),
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.String("request_id", v.RequestID),
				zap.String("user_agent", v.UserAgent),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	s := &Server{
		lg: lg,
		srv: &http.Server{
			Addr:              opts.addr,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		apiSwagger: opts.apiSwagger,
		mode:       opts.mode,
	}
	index := newIndexPage(opts.mode.String())

	e.GET("/version", s.Version)
	index.addPage("/version", "Get build information")

	e.GET("/mode", s.Mode)
	index.addPage("/mode", "Get serving mode")

	e.GET("/log/level", echo.WrapHandler(logger.Level))
	e.PUT("/log/level", echo.WrapHandler(logger.Level))
	index.addPage("/log/level", "Get log level")

	{
		pprofMux := http.NewServeMux()
		pprofMux.HandleFunc("/debug/pprof/", pprof.Index)
		pprofMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		pprofMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		pprofMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		pprofMux.HandleFunc("/debug/pprof/trace", pprof.Trace)

		e.GET("/debug/pprof/*", echo.WrapHandler(pprofMux))
		index.addPage("/debug/pprof/", "Go std profiler")
		index.addPage("/debug/pprof/profile?seconds=30", "Take half-min profile")
	}

	e.GET("/debug/error", s.DebugError)
	index.addPage("/debug/error", "Debug Sentry error event")

	e.GET("/schema/api", s.SchemaAPI)
	index.addPage("/schema/api", "Get API OpenAPI specification")

	e.GET("/", index.handler)
	return s, nil
}

// Handler is exposed for in-process testing.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(
		func() error {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return s.srv.Shutdown(ctx) //nolint:contextcheck // graceful shutdown with new context
		},
	)

	eg.Go(
		func() error {
			s.lg.Info("listen and serve", zap.String("addr", s.srv.Addr))

			if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen and serve: %v", err)
			}
			return nil
		},
	)

	return eg.Wait()
}

func (s *Server) Version(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, buildinfo.BuildInfo)
}

func (s *Server) Mode(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, map[string]string{"mode": s.mode.String()})
}

func (s *Server) DebugError(eCtx echo.Context) error {
	s.lg.Error("look for me in the sentry")

	return eCtx.String(http.StatusOK, "event sent")
}

func (s *Server) SchemaAPI(eCtx echo.Context) error {
	return eCtx.JSON(http.StatusOK, s.apiSwagger)
}
