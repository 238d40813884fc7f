package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"growth_backend/internal/app/di"
	"growth_backend/internal/platform/logging"
)

const defaultPort = "5000"

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
	logging.Setup()

	app, err := di.Build(context.Background())
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("failed to close resources", "error", err)
		}
	}()

	// JWT_SECRETチェック（/v1/stats を使う場合のみ必要）
	if os.Getenv("JWT_SECRET") == "" {
		slog.Warn("JWT_SECRET is not set. /v1/stats will reject every request.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	slog.Info("starting server", "port", port)
	if err := app.Router.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
