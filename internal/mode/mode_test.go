package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/spa-server/internal/mode"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		exp mode.Mode
	}{
		{in: "production", exp: mode.Production},
		{in: "", exp: mode.Development},
		{in: "development", exp: mode.Development},
		{in: "Production", exp: mode.Development},
		{in: "production ", exp: mode.Development},
		{in: "prod", exp: mode.Development},
	}

	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.exp, mode.Parse(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("NODE_ENV", "")
		m, err := mode.Resolve()
		require.NoError(t, err)
		assert.Equal(t, mode.Development, m)
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("NODE_ENV", "production")
		m, err := mode.Resolve()
		require.NoError(t, err)
		assert.Equal(t, mode.Production, m)
		assert.True(t, m.IsProduction())
	})

	t.Run("resolved value does not follow the environment", func(t *testing.T) {
		t.Setenv("NODE_ENV", "production")
		m, err := mode.Resolve()
		require.NoError(t, err)

		t.Setenv("NODE_ENV", "test")
		assert.Equal(t, mode.Production, m)
	})
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "development", mode.Development.String())
	assert.Equal(t, "production", mode.Production.String())
	assert.False(t, mode.Development.IsProduction())
}
