package devbundler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/zestagio/spa-server/internal/buildinfo"
)

const (
	readyProbeInitialInterval = 100 * time.Millisecond
	readyProbeMaxInterval     = time.Second
)

//go:generate options-gen -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	logger           *zap.Logger   `option:"mandatory" validate:"required"`
	addr             string        `option:"mandatory" validate:"required,http_url"`
	base             string        `default:"/" validate:"required,startswith=/,endswith=/"`
	reactRefresh     bool
	debugMode        bool
	waitTimeout      time.Duration `default:"10s" validate:"min=0,max=5m"`
	handshakeTimeout time.Duration `default:"5s" validate:"min=100ms,max=1m"`
}

// Client talks to a running Vite dev server. It forwards module requests,
// relays the HMR websocket and applies the dev transform to the HTML shell.
type Client struct {
	lg           *zap.Logger
	base         string
	reactRefresh bool
	waitTimeout  time.Duration

	cli      *resty.Client
	wsURL    *url.URL
	dialer   *websocket.Dialer
	upgrader websocket.Upgrader
	relays   *atomic.Int64
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	upstream, err := url.Parse(opts.addr)
	if err != nil {
		return nil, fmt.Errorf("parse bundler addr: %v", err)
	}

	wsURL := *upstream
	wsURL.Path, wsURL.RawQuery = "", ""
	switch upstream.Scheme {
	case "https":
		wsURL.Scheme = "wss"
	default:
		wsURL.Scheme = "ws"
	}

	cli := resty.New()
	cli.SetDebug(opts.debugMode)
	cli.SetLogger(opts.logger.Sugar())
	cli.SetBaseURL(opts.addr)
	// Redirects and cookies belong to the browser, not to the relay.
	cli.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	cli.SetCookieJar(nil)
	cli.SetHeader("User-Agent", "spa-server/"+buildinfo.Version())

	return &Client{
		lg:           opts.logger,
		base:         opts.base,
		reactRefresh: opts.reactRefresh,
		waitTimeout:  opts.waitTimeout,
		cli:          cli,
		wsURL:        &wsURL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.handshakeTimeout,
		},
		upgrader: websocket.Upgrader{
			HandshakeTimeout: opts.handshakeTimeout,
			// The relay only exists in development, like the bundler itself.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		relays: atomic.NewInt64(0),
	}, nil
}

// WaitReady polls the bundler until it answers or the wait timeout expires.
// A zero timeout disables the wait.
func (c *Client) WaitReady(ctx context.Context) error {
	if c.waitTimeout == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.waitTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = readyProbeInitialInterval
	b.MaxInterval = readyProbeMaxInterval
	b.MaxElapsedTime = 0

	probe := func() error {
		resp, err := c.cli.R().SetContext(ctx).Get(c.base + viteClientPath)
		if err != nil {
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("unexpected status: %v", resp.Status())
		}
		return nil
	}

	if err := backoff.Retry(probe, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("wait for dev bundler %s: %v", c.cli.BaseURL, err)
	}
	return nil
}

// ActiveRelays returns the number of open HMR relays.
func (c *Client) ActiveRelays() int64 {
	return c.relays.Load()
}

func (c *Client) Close() error {
	c.cli.GetClient().CloseIdleConnections()
	return nil
}
