package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/askarov/sudocube-server/internal/app"
	"github.com/askarov/sudocube-server/internal/config"
	"github.com/askarov/sudocube-server/internal/validator"
)

//go:embed migrations/*.sql
var migrations embed.FS

func setupCoreLog(logger *slog.Logger) {
	if config.Development() {
		validator.Log.SetLevel(logrus.DebugLevel)
	}
	path := config.LogFile()
	if path == "" {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		logger.Error("unable to create rotating log file", slog.Any("error", err))
		return
	}
	validator.Log.AddHook(hook)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	setupCoreLog(logger)

	a := app.New(logger, migrations)

	if err := a.Start(ctx); err != nil {
		logger.Error("failed to start server", slog.Any("error", err))
	}
}
