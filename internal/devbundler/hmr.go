package devbundler

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	internalerrors "github.com/zestagio/spa-server/internal/errors"
)

const (
	writeTimeout  = 5 * time.Second
	closeDeadline = time.Second
)

// relayHMR bridges the browser's hot-reload websocket to the bundler.
func (c *Client) relayHMR(eCtx echo.Context) error {
	req := eCtx.Request()
	lg := c.lg.With(zap.String("path", req.URL.Path))

	target := *c.wsURL
	target.Path = req.URL.Path
	target.RawQuery = req.URL.RawQuery

	dialer := *c.dialer
	dialer.Subprotocols = websocket.Subprotocols(req)

	up, resp, err := dialer.DialContext(req.Context(), target.String(), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return internalerrors.NewServerError(http.StatusBadGateway, "dev bundler hmr unavailable", err)
	}

	var respHeader http.Header
	if p := up.Subprotocol(); p != "" {
		respHeader = http.Header{"Sec-Websocket-Protocol": []string{p}}
	}

	down, err := c.upgrader.Upgrade(eCtx.Response(), req, respHeader)
	if err != nil {
		_ = up.Close()
		return fmt.Errorf("upgrade hmr connection: %v", err)
	}

	c.relays.Inc()
	defer c.relays.Dec()
	lg.Debug("hmr relay opened", zap.String("subprotocol", up.Subprotocol()))

	closer := newRelayCloser(up, down)

	var eg errgroup.Group
	eg.Go(func() error {
		defer closer.Close()
		return pump(down, up)
	})
	eg.Go(func() error {
		defer closer.Close()
		return pump(up, down)
	})

	err = eg.Wait()
	if cerr := closer.Err(); cerr != nil {
		lg.Debug("close hmr relay", zap.Error(cerr))
	}

	if err != nil && !isRelayClosed(err) {
		lg.Warn("hmr relay broken", zap.Error(err))
	} else {
		lg.Debug("hmr relay closed")
	}
	return nil
}

// pump copies messages from src to dst and forwards the close frame.
func pump(dst, src *websocket.Conn) error {
	for {
		mt, data, err := src.ReadMessage()
		if err != nil {
			if ce := new(websocket.CloseError); errors.As(err, &ce) {
				_ = dst.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(ce.Code, ce.Text),
					time.Now().Add(closeDeadline),
				)
			}
			return err
		}

		if err := dst.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			return fmt.Errorf("set write deadline: %w", err)
		}
		if err := dst.WriteMessage(mt, data); err != nil {
			return fmt.Errorf("write message: %w", err)
		}
	}
}

func isRelayClosed(err error) bool {
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseNoStatusReceived,
		websocket.CloseAbnormalClosure,
	) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, websocket.ErrCloseSent)
}

type relayCloser struct {
	once sync.Once
	up   *websocket.Conn
	down *websocket.Conn
	err  error
}

func newRelayCloser(up, down *websocket.Conn) *relayCloser {
	return &relayCloser{up: up, down: down}
}

func (c *relayCloser) Close() {
	c.once.Do(func() {
		c.err = multierr.Combine(c.up.Close(), c.down.Close())
	})
}

func (c *relayCloser) Err() error {
	return c.err
}
