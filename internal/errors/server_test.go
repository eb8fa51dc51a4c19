package errors_test

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	internalerrors "github.com/zestagio/spa-server/internal/errors"
)

func TestServerError(t *testing.T) {
	err := internalerrors.NewServerError(
		http.StatusBadGateway,
		"dev bundler unavailable",
		fmt.Errorf("dial: %w", context.Canceled),
	)
	assert.Equal(t, http.StatusBadGateway, err.Code)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessServerError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		expCode    int
		expMsg     string
		expDetails string
	}{
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusBadRequest, "bind request"),
			expCode:    http.StatusBadRequest,
			expMsg:     "bind request",
			expDetails: "code=400, message=bind request",
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			expCode:    http.StatusNotFound,
			expMsg:     "Not Found",
			expDetails: "code=404, message=Not Found",
		},
		{
			name: "custom error",
			err: internalerrors.NewServerError(
				http.StatusInternalServerError,
				"render html shell",
				fmt.Errorf("read template: open index.html: %w", fs.ErrNotExist),
			),
			expCode:    http.StatusInternalServerError,
			expMsg:     "render html shell",
			expDetails: "render html shell: read template: open index.html: file does not exist",
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("cannot transform template: %w", io.EOF),
			expCode:    http.StatusInternalServerError,
			expMsg:     "something went wrong",
			expDetails: "cannot transform template: EOF",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			code, msg, details := internalerrors.ProcessServerError(tt.err)
			assert.Equal(t, tt.expCode, code)
			assert.Equal(t, tt.expMsg, msg)
			assert.Equal(t, tt.expDetails, details)
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, internalerrors.HTTPStatus(http.StatusBadGateway))
	assert.Equal(t, http.StatusInternalServerError, internalerrors.HTTPStatus(4242))
	assert.Equal(t, http.StatusInternalServerError, internalerrors.HTTPStatus(0))
}
