package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/spa-server/internal/api"
	"github.com/zestagio/spa-server/internal/config"
	"github.com/zestagio/spa-server/internal/logger"
	serverdebug "github.com/zestagio/spa-server/internal/server-debug"
)

var configPath = flag.String("config", "", "Path to config file, defaults and environment only if empty")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() (errReturned error) {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Mode.String()),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Mode.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")

	if cfg.Mode.IsProduction() && cfg.DevBundler.Debug {
		lg.Warn("dev bundler debug is ignored in production mode")
	}

	app, err := initServerApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app server: %v", err)
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(app))

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return app.Run(ctx) })

	if cfg.Servers.Debug.Addr != "" {
		apiSwagger, err := api.GetSwagger()
		if err != nil {
			return fmt.Errorf("get api swagger: %v", err)
		}

		srvDebug, err := serverdebug.New(serverdebug.NewOptions(cfg.Servers.Debug.Addr, apiSwagger, cfg.Mode))
		if err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
		eg.Go(func() error { return srvDebug.Run(ctx) })
	}

	lg.Info("server running", zap.String("url", cfg.Servers.App.URL()), zap.Stringer("mode", cfg.Mode))

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
