package devbundler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	internalerrors "github.com/zestagio/spa-server/internal/errors"
)

var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Proxy-Connection",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Resolve serves the request from the bundler if it owns it.
// Navigation requests and anything the bundler answers with 404 are left unresolved.
func (c *Client) Resolve(eCtx echo.Context) (bool, error) {
	req := eCtx.Request()

	if websocket.IsWebSocketUpgrade(req) {
		return true, c.relayHMR(eCtx)
	}

	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return false, nil
	}

	if strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMETextHTML) {
		return false, nil
	}

	return c.forward(eCtx)
}

func (c *Client) forward(eCtx echo.Context) (bool, error) {
	req := eCtx.Request()

	r := c.cli.R().
		SetContext(req.Context()).
		SetDoNotParseResponse(true)
	for k, vv := range req.Header {
		r.Header[k] = append([]string(nil), vv...)
	}
	removeHopHeaders(r.Header)

	resp, err := r.Execute(req.Method, req.URL.RequestURI())
	if err != nil {
		return false, internalerrors.NewServerError(http.StatusBadGateway, "dev bundler unavailable", err)
	}

	body := resp.RawBody()
	if body == nil {
		body = http.NoBody
	}
	defer body.Close()

	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}

	h := eCtx.Response().Header()
	for k, vv := range resp.Header() {
		h[k] = vv
	}
	removeHopHeaders(h)

	eCtx.Response().WriteHeader(resp.StatusCode())
	if _, err := io.Copy(eCtx.Response(), body); err != nil {
		return true, fmt.Errorf("copy bundler response: %v", err)
	}
	return true, nil
}

func removeHopHeaders(h http.Header) {
	for _, k := range hopHeaders {
		h.Del(k)
	}
}
