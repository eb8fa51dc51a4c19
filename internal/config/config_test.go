package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zestagio/spa-server/internal/config"
	"github.com/zestagio/spa-server/internal/mode"
)

func TestAppServerConfig_Addr(t *testing.T) {
	assert.Equal(t, ":3000", config.AppServerConfig{Port: "3000"}.Addr())
	assert.Equal(t, "127.0.0.1:8080", config.AppServerConfig{Host: "127.0.0.1", Port: "8080"}.Addr())
}

func TestAppServerConfig_URL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000", config.AppServerConfig{Port: "3000"}.URL())
	assert.Equal(t, "http://0.0.0.0:80", config.AppServerConfig{Host: "0.0.0.0", Port: "80"}.URL())
}

func TestConfig_TemplatePath(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "index.html", cfg.TemplatePath())

	cfg.Mode = mode.Production
	assert.Equal(t, "dist/client/index.html", cfg.TemplatePath())
}
