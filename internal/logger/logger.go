package logger

import (
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"syscall"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zestagio/spa-server/internal/buildinfo"
)

const sentryFlushTimeout = 2 * time.Second

// Level is the global log level. It can be changed at runtime via HTTP (see zap.AtomicLevel.ServeHTTP).
var Level = zap.NewAtomicLevel()

var sentryClient *sentry.Client

//go:generate options-gen -out-filename=logger_options.gen.go -from-struct=Options
type Options struct {
	level          string `option:"mandatory" validate:"required,oneof=debug info warn error"`
	productionMode bool
	sentryDsn      string `validate:"omitempty,url"`
	sentryEnv      string
}

func MustInit(opts Options) {
	if err := Init(opts); err != nil {
		panic(err)
	}
}

func Init(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("validate options: %v", err)
	}

	logLevel, err := zap.ParseAtomicLevel(opts.level)
	if err != nil {
		return fmt.Errorf("invalid logger level: %v", err)
	}
	Level.SetLevel(logLevel.Level())

	encoder := zapcore.NewConsoleEncoder
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "component",
		TimeKey:        "T",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if opts.productionMode {
		encoder = zapcore.NewJSONEncoder
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder(encoderCfg), os.Stdout, Level),
	}

	if opts.sentryDsn != "" {
		client, err := NewSentryClient(opts.sentryDsn, opts.sentryEnv, buildinfo.Version())
		if err != nil {
			return fmt.Errorf("create sentry client: %v", err)
		}

		core, err := zapsentry.NewCore(
			zapsentry.Configuration{Level: zapcore.WarnLevel},
			zapsentry.NewSentryClientFromClient(client),
		)
		if err != nil {
			return fmt.Errorf("create sentry core: %v", err)
		}

		sentryClient = client
		cores = append(cores, core)
	}

	l := zap.New(zapcore.NewTee(cores...))
	zap.ReplaceGlobals(l)

	return nil
}

func Sync() {
	if err := zap.L().Sync(); err != nil && !errors.Is(err, syscall.ENOTTY) && !errors.Is(err, syscall.EINVAL) {
		stdlog.Printf("cannot sync logger: %v", err)
	}

	if sentryClient != nil {
		sentryClient.Flush(sentryFlushTimeout)
	}
}
