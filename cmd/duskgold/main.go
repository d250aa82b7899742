package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/swelljoe/duskgold/internal/cli"
	"github.com/swelljoe/duskgold/internal/config"
	"github.com/swelljoe/duskgold/internal/i18n"
	"github.com/swelljoe/duskgold/internal/weather"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return cli.ExitFailure
	}
	defer logger.Sync()

	client := weather.NewClient(cfg, logger)
	app := &cli.App{
		In:      os.Stdin,
		Out:     os.Stdout,
		Clock:   cli.SystemClock{},
		Reports: weather.NewService(client, logger),
		Logger:  logger,
	}

	if err := app.Run(context.Background()); err != nil {
		logger.Debug("run failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "⚠️ %s: %v\n", i18n.T(app.Lang, i18n.Error), err)
		return cli.ExitCode(err)
	}
	return cli.ExitOK
}

// newLogger builds a console logger on stderr so it never mixes with the report
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}
