package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/spa-server/internal/errors"
	"github.com/zestagio/spa-server/internal/mode"
	_ "github.com/zestagio/spa-server/internal/validator" // url_prefix tag.
)

const (
	RouteAPI        = "api"
	RouteStatic     = "static"
	RouteDevBundler = "dev-bundler"
	RouteHTMLShell  = "html-shell"
)

// errUnresolved makes Handle try the next route.
var errUnresolved = errors.New("unresolved")

//go:generate mockgen -source=$GOFILE -destination=mocks/router_mock.gen.go -package=routermocks

type assetResolver interface {
	Resolve(eCtx echo.Context) (bool, error)
}

type devBundler interface {
	Resolve(eCtx echo.Context) (bool, error)
	TransformTemplate(ctx context.Context, url, template string) (string, error)
}

type templateSource interface {
	Read(ctx context.Context) (string, error)
}

//go:generate options-gen -out-filename=router_options.gen.go -from-struct=Options
type Options struct {
	logger     *zap.Logger      `option:"mandatory" validate:"required"`
	mode       mode.Mode        `option:"mandatory" validate:"required,oneof=development production"`
	apiHandler echo.HandlerFunc `option:"mandatory" validate:"required"`
	template   templateSource   `option:"mandatory" validate:"required"`
	apiPrefix  string           `default:"/api" validate:"required,url_prefix"`

	// Exactly one of them is used, depending on the mode.
	staticAssets assetResolver
	devBundler   devBundler
}

type route struct {
	name   string
	match  func(eCtx echo.Context) bool
	handle echo.HandlerFunc
}

// Router dispatches every request through a fixed, ordered route table.
// The first matching route that resolves the request wins.
type Router struct {
	lg         *zap.Logger
	mode       mode.Mode
	apiPrefix  string
	template   templateSource
	devBundler devBundler
	routes     []route
}

func New(opts Options) (*Router, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	r := &Router{
		lg:         opts.logger,
		mode:       opts.mode,
		apiPrefix:  opts.apiPrefix,
		template:   opts.template,
		devBundler: opts.devBundler,
	}

	r.routes = append(r.routes, route{name: RouteAPI, match: r.isAPI, handle: opts.apiHandler})

	switch opts.mode {
	case mode.Production:
		if opts.staticAssets == nil {
			return nil, errors.New("static assets are required in production mode")
		}
		r.routes = append(r.routes, route{name: RouteStatic, match: matchAll, handle: resolveWith(opts.staticAssets)})

	case mode.Development:
		if opts.devBundler == nil {
			return nil, errors.New("dev bundler is required in development mode")
		}
		r.routes = append(r.routes, route{name: RouteDevBundler, match: matchAll, handle: resolveWith(opts.devBundler)})
	}

	r.routes = append(r.routes, route{name: RouteHTMLShell, match: matchAll, handle: r.htmlShell})

	return r, nil
}

// Routes returns route names in evaluation order.
func (r *Router) Routes() []string {
	names := make([]string, 0, len(r.routes))
	for _, rt := range r.routes {
		names = append(names, rt.name)
	}
	return names
}

// Register mounts the router as the catch-all of e. It replaces whatever echo
// routed to, so methods outside echo's own list still reach Handle.
func (r *Router) Register(e *echo.Echo) {
	e.Use(func(echo.HandlerFunc) echo.HandlerFunc {
		return r.Handle
	})
}

func (r *Router) Handle(eCtx echo.Context) error {
	for _, rt := range r.routes {
		if !rt.match(eCtx) {
			continue
		}

		err := rt.handle(eCtx)
		if errors.Is(err, errUnresolved) {
			continue
		}
		return err
	}

	return echo.ErrNotFound
}

// isAPI matches the prefix case-insensitively on a path segment boundary.
func (r *Router) isAPI(eCtx echo.Context) bool {
	p := eCtx.Request().URL.Path
	n := len(r.apiPrefix)
	if len(p) < n || !strings.EqualFold(p[:n], r.apiPrefix) {
		return false
	}
	return len(p) == n || p[n] == '/'
}

func (r *Router) htmlShell(eCtx echo.Context) error {
	req := eCtx.Request()
	ctx := req.Context()

	html, err := r.template.Read(ctx)
	if err != nil {
		return internalerrors.NewServerError(http.StatusInternalServerError, "read html shell", err)
	}

	if r.mode.IsProduction() {
		// Unknown paths get the shell for client-side routing, which also hides missing assets.
		if path.Ext(req.URL.Path) != "" {
			r.lg.Debug("html shell served for asset-like path", zap.String("path", req.URL.Path))
		}
	} else {
		html, err = r.devBundler.TransformTemplate(ctx, originalURL(req), html)
		if err != nil {
			return internalerrors.NewServerError(http.StatusInternalServerError, "transform html shell", err)
		}
	}

	return eCtx.HTML(http.StatusOK, html)
}

func resolveWith(res assetResolver) echo.HandlerFunc {
	return func(eCtx echo.Context) error {
		resolved, err := res.Resolve(eCtx)
		if err != nil {
			return err
		}
		if !resolved {
			return errUnresolved
		}
		return nil
	}
}

func matchAll(echo.Context) bool { return true }

func originalURL(req *http.Request) string {
	if req.RequestURI != "" {
		return req.RequestURI
	}
	return req.URL.RequestURI()
}
