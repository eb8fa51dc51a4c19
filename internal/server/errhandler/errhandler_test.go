package errhandler_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/spa-server/internal/errors"
	"github.com/zestagio/spa-server/internal/server/errhandler"
)

func TestHandler_Handle_InDevMode(t *testing.T) {
	const productionMode = false

	cases := []struct {
		name      string
		err       error
		expStatus int
		expResp   string
	}{
		{
			name:      "echo error",
			err:       echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			expStatus: http.StatusMethodNotAllowed,
			expResp: `{"error": {"code": 405, "message": "method not allowed",
"details": "code=405, message=method not allowed"}}`,
		},
		{
			name: "custom error",
			err: internalerrors.NewServerError(
				http.StatusInternalServerError,
				"render html shell",
				fmt.Errorf("read template: open index.html: %w", os.ErrNotExist),
			),
			expStatus: http.StatusInternalServerError,
			expResp: `{"error": {"code": 500, "message": "render html shell",
"details": "render html shell: read template: open index.html: file does not exist"}}`,
		},
		{
			name:      "custom error with non http code",
			err:       internalerrors.NewServerError(1000, "bundler is gone", io.ErrUnexpectedEOF),
			expStatus: http.StatusInternalServerError,
			expResp:   `{"error": {"code": 1000, "message": "bundler is gone", "details": "bundler is gone: unexpected EOF"}}`,
		},
		{
			name:      "unknown error",
			err:       fmt.Errorf("forward to dev bundler: %w", context.Canceled),
			expStatus: http.StatusInternalServerError,
			expResp: `{"error": {"code": 500, "message": "something went wrong",
"details": "forward to dev bundler: context canceled"}}`,
		},
	}

	h, err := errhandler.New(errhandler.NewOptions(zap.L(), productionMode, errhandler.ResponseBuilder))
	require.NoError(t, err)

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			resp, ctx := newEchoCtx(http.MethodGet)
			h.Handle(tt.err, ctx)

			b, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.expStatus, resp.Code)
			assert.JSONEq(t, tt.expResp, string(b))
		})
	}
}

func TestHandler_Handle_InProductionMode(t *testing.T) {
	const productionMode = true

	cases := []struct {
		name      string
		err       error
		expStatus int
		expResp   string
	}{
		{
			name:      "echo error",
			err:       echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			expStatus: http.StatusMethodNotAllowed,
			expResp:   `{"error": {"code": 405, "message": "method not allowed"}}`,
		},
		{
			name: "custom error",
			err: internalerrors.NewServerError(
				http.StatusInternalServerError,
				"render html shell",
				fmt.Errorf("read template: open dist/client/index.html: %w", os.ErrNotExist),
			),
			expStatus: http.StatusInternalServerError,
			expResp:   `{"error": {"code": 500, "message": "render html shell"}}`,
		},
		{
			name:      "unknown error",
			err:       fmt.Errorf("forward to dev bundler: %w", context.Canceled),
			expStatus: http.StatusInternalServerError,
			expResp:   `{"error": {"code": 500, "message": "something went wrong"}}`,
		},
	}

	h, err := errhandler.New(errhandler.NewOptions(zap.L(), productionMode, errhandler.ResponseBuilder))
	require.NoError(t, err)

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			resp, ctx := newEchoCtx(http.MethodGet)
			h.Handle(tt.err, ctx)

			b, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.expStatus, resp.Code)
			assert.JSONEq(t, tt.expResp, string(b))
		})
	}
}

func TestHandler_Handle_HeadRequest(t *testing.T) {
	h, err := errhandler.New(errhandler.NewOptions(zap.L(), false, errhandler.ResponseBuilder))
	require.NoError(t, err)

	resp, ctx := newEchoCtx(http.MethodHead)
	h.Handle(echo.NewHTTPError(http.StatusBadGateway, "bad gateway"), ctx)

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Empty(t, resp.Body.String())
}

func TestHandler_Handle_CommittedResponse(t *testing.T) {
	h, err := errhandler.New(errhandler.NewOptions(zap.L(), false, errhandler.ResponseBuilder))
	require.NoError(t, err)

	resp, ctx := newEchoCtx(http.MethodGet)
	require.NoError(t, ctx.String(http.StatusOK, "partial"))

	h.Handle(io.ErrUnexpectedEOF, ctx)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "partial", resp.Body.String())
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := errhandler.New(errhandler.NewOptions(nil, false, errhandler.ResponseBuilder))
	require.Error(t, err)

	_, err = errhandler.New(errhandler.NewOptions(zap.L(), false, nil))
	require.Error(t, err)
}

func newEchoCtx(method string) (resp *httptest.ResponseRecorder, ctx echo.Context) {
	req := httptest.NewRequest(method, "/assets/main.tsx", nil)
	resp = httptest.NewRecorder()
	ctx = echo.New().NewContext(req, resp)
	return resp, ctx
}
