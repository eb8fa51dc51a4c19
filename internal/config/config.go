package config

import (
	"net"
	"path/filepath"
	"time"

	"github.com/zestagio/spa-server/internal/mode"
)

// Config is built once at startup and only read afterwards.
type Config struct {
	Mode       mode.Mode        `toml:"-" validate:"required,oneof=development production"`
	Log        LogConfig        `toml:"log"`
	Sentry     SentryConfig     `toml:"sentry"`
	Servers    ServersConfig    `toml:"servers"`
	Assets     AssetsConfig     `toml:"assets"`
	DevBundler DevBundlerConfig `toml:"dev_bundler"`
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	App   AppServerConfig   `toml:"app"`
	Debug DebugServerConfig `toml:"debug"`
}

type AppServerConfig struct {
	Host      string `toml:"host" validate:"omitempty,hostname|ip"`
	Port      string `toml:"port" validate:"required,numeric"`
	APIPrefix string `toml:"api_prefix" validate:"required,url_prefix"`
}

func (c AppServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// URL is the address printed for humans on startup.
func (c AppServerConfig) URL() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, c.Port)
}

type DebugServerConfig struct {
	// Addr is empty when the debug server is disabled.
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

type AssetsConfig struct {
	TemplatePath string `toml:"template_path" validate:"required"`
	StaticRoot   string `toml:"static_root" validate:"required"`
}

// ProductionTemplatePath is the HTML shell produced by the build step.
func (c AssetsConfig) ProductionTemplatePath() string {
	return filepath.Join(c.StaticRoot, "index.html")
}

type DevBundlerConfig struct {
	Addr         string        `toml:"addr" validate:"required,http_url"`
	Base         string        `toml:"base" validate:"required,startswith=/,endswith=/"`
	ReactRefresh bool          `toml:"react_refresh"`
	WaitTimeout  time.Duration `toml:"wait_timeout" validate:"min=0,max=5m"`
	Debug        bool          `toml:"debug"`
}

// TemplatePath returns the HTML shell location for the mode.
func (c Config) TemplatePath() string {
	if c.Mode.IsProduction() {
		return c.Assets.ProductionTemplatePath()
	}
	return c.Assets.TemplatePath
}

func Default() Config {
	return Config{
		Mode: mode.Development,
		Log: LogConfig{
			Level: "info",
		},
		Servers: ServersConfig{
			App: AppServerConfig{
				Port:      "3000",
				APIPrefix: "/api",
			},
		},
		Assets: AssetsConfig{
			TemplatePath: "index.html",
			StaticRoot:   "dist/client",
		},
		DevBundler: DevBundlerConfig{
			Addr:         "http://localhost:5173",
			Base:         "/",
			ReactRefresh: true,
			WaitTimeout:  10 * time.Second,
		},
	}
}
