package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/zestagio/spa-server/internal/mode"
	"github.com/zestagio/spa-server/internal/validator"
)

// Env is the process environment understood by the server.
// Non-empty values override the config file.
type Env struct {
	Port           string `envconfig:"PORT"`
	LogLevel       string `envconfig:"LOG_LEVEL"`
	SentryDsn      string `envconfig:"SENTRY_DSN"`
	DevBundlerAddr string `envconfig:"DEV_BUNDLER_ADDR"`
}

// ParseAndValidate builds the config from defaults, the optional TOML file
// and the environment, in that order. The mode comes from NODE_ENV only.
func ParseAndValidate(filename string) (Config, error) {
	m, err := mode.Resolve()
	if err != nil {
		return Config{}, fmt.Errorf("resolve mode: %v", err)
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Config{}, fmt.Errorf("process env: %v", err)
	}
	return parseAndValidate(filename, m, env)
}

func parseAndValidate(filename string, m mode.Mode, env Env) (Config, error) {
	conf := Default()
	if filename != "" {
		if _, err := toml.DecodeFile(filename, &conf); err != nil {
			return conf, err
		}
	}

	conf.Mode = m
	conf.applyEnv(env)

	if err := validator.Validator.Struct(conf); err != nil {
		return conf, err
	}

	return conf, nil
}

func (c *Config) applyEnv(env Env) {
	if env.Port != "" {
		c.Servers.App.Port = env.Port
	}
	if c.Servers.App.Port == "" {
		c.Servers.App.Port = Default().Servers.App.Port
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.SentryDsn != "" {
		c.Sentry.Dsn = env.SentryDsn
	}
	if env.DevBundlerAddr != "" {
		c.DevBundler.Addr = env.DevBundlerAddr
	}
}
