package testingh

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

// NewEchoCtx builds an echo context around a recorded request.
// Headers are given as key-value pairs.
func NewEchoCtx(ctx context.Context, method, target string, headers ...string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(method, target, nil).WithContext(ctx)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Add(headers[i], headers[i+1])
	}

	resp := httptest.NewRecorder()
	return resp, echo.New().NewContext(req, resp)
}

// Do runs the request through handler the way echo would, error handler included.
func Do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	return resp
}
