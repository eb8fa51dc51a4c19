package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/zestagio/spa-server/internal/api"
	"github.com/zestagio/spa-server/internal/assets"
	"github.com/zestagio/spa-server/internal/config"
	"github.com/zestagio/spa-server/internal/devbundler"
	"github.com/zestagio/spa-server/internal/router"
	"github.com/zestagio/spa-server/internal/server"
	"github.com/zestagio/spa-server/internal/server/errhandler"
)

const nameServerApp = "server-app"

type serverApp struct {
	*server.Server
	bundler *devbundler.Client
}

func (s serverApp) Close() error {
	if s.bundler == nil {
		return nil
	}
	return s.bundler.Close()
}

func initServerApp(ctx context.Context, cfg config.Config) (serverApp, error) {
	lg := zap.L().Named(nameServerApp)

	template, err := assets.NewTemplateFile(cfg.TemplatePath())
	if err != nil {
		return serverApp{}, fmt.Errorf("create template file: %v", err)
	}

	routerOpts := []router.OptOptionsSetter{router.WithApiPrefix(cfg.Servers.App.APIPrefix)}
	var bundler *devbundler.Client

	if cfg.Mode.IsProduction() {
		if !template.Exists() {
			lg.Warn("html shell is missing, non-asset requests will fail until it is built",
				zap.String("path", template.Path()))
		}

		static, err := assets.NewStaticDir(assets.NewStaticOptions(cfg.Assets.StaticRoot))
		if err != nil {
			return serverApp{}, fmt.Errorf("create static dir: %v", err)
		}
		routerOpts = append(routerOpts, router.WithStaticAssets(static))
	} else {
		bundler, err = devbundler.New(devbundler.NewOptions(
			zap.L().Named("dev-bundler"),
			cfg.DevBundler.Addr,
			devbundler.WithBase(cfg.DevBundler.Base),
			devbundler.WithReactRefresh(cfg.DevBundler.ReactRefresh),
			devbundler.WithDebugMode(cfg.DevBundler.Debug),
			devbundler.WithWaitTimeout(cfg.DevBundler.WaitTimeout),
		))
		if err != nil {
			return serverApp{}, fmt.Errorf("create dev bundler client: %v", err)
		}

		if err := bundler.WaitReady(ctx); err != nil {
			lg.Warn("dev bundler is not ready, requests will fail until it starts", zap.Error(err))
		}
		routerOpts = append(routerOpts, router.WithDevBundler(bundler))
	}

	r, err := router.New(router.NewOptions(lg, cfg.Mode, api.Hello, template, routerOpts...))
	if err != nil {
		return serverApp{}, fmt.Errorf("create router: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, cfg.Mode.IsProduction(), errhandler.ResponseBuilder))
	if err != nil {
		return serverApp{}, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		cfg.Servers.App.Addr(),
		errHandler.Handle,
		r.Register,
	))
	if err != nil {
		return serverApp{}, fmt.Errorf("build server: %v", err)
	}

	return serverApp{Server: srv, bundler: bundler}, nil
}
