// Package api is the Vercel serverless entrypoint. Every request is served by the same
// gin router the local server uses.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"growth_backend/internal/app/di"
	"growth_backend/internal/platform/logging"
)

var (
	initOnce sync.Once
	initErr  error
	router   http.Handler
)

func initApp() {
	logging.Setup()
	app, err := di.Build(context.Background())
	if err != nil {
		initErr = err
		return
	}
	router = app.Router
}

// Handler is invoked by the Vercel Go runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(initApp)
	if initErr != nil {
		slog.Error("bootstrap error", "error", initErr)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"bootstrap failed"}`))
		return
	}
	router.ServeHTTP(w, r)
}
