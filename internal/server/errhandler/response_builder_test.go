package errhandler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/spa-server/internal/server/errhandler"
)

func TestResponseBuilder(t *testing.T) {
	t.Run("with details", func(t *testing.T) {
		err := errhandler.ResponseBuilder(502, "hello", "world")

		resp, ok := err.(errhandler.Response)
		require.True(t, ok)

		assert.Equal(t, 502, resp.Error.Code)
		assert.Equal(t, "hello", resp.Error.Message)
		require.NotNil(t, resp.Error.Details)
		assert.Equal(t, "world", *resp.Error.Details)
	})

	t.Run("without details", func(t *testing.T) {
		err := errhandler.ResponseBuilder(500, "hello", "")

		resp, ok := err.(errhandler.Response)
		require.True(t, ok)

		assert.Equal(t, 500, resp.Error.Code)
		assert.Equal(t, "hello", resp.Error.Message)
		assert.Nil(t, resp.Error.Details)
	})
}
