// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"growth_backend/internal/feature/analysis/adapters/bedrock"
	"growth_backend/internal/feature/analysis/adapters/completion"
	"growth_backend/internal/feature/analysis/adapters/gemini"
	"growth_backend/internal/feature/analysis/usecase"
	infrahttp "growth_backend/internal/platform/http"
	"growth_backend/internal/shared/ratelimiter"
)

// httpTimeoutSlack keeps the transport timeout above the per-call context deadline.
const httpTimeoutSlack = 10 * time.Second

// NewCompletion creates the completion service selected by cfg.Provider.
// It returns a nil interface, not an error, when the provider has no credentials so the
// process can still start and report itself as unconfigured.
func NewCompletion(ctx context.Context, cfg Config) (usecase.CompletionService, error) {
	var (
		svc   usecase.CompletionService
		model string
	)

	switch cfg.Provider {
	case ProviderGemini:
		gcfg := gemini.LoadConfig()
		if gcfg.APIKey == "" {
			slog.Warn("GOOGLE_API_KEY is not set; AI analysis is disabled")
			return nil, nil
		}
		g, err := gemini.NewGeminiCompletion(ctx, gcfg, infrahttp.NewHTTPClient(cfg.Timeout+httpTimeoutSlack))
		if err != nil {
			return nil, err
		}
		svc, model = g, g.Model()
	case ProviderBedrock:
		bcfg := bedrock.LoadConfig()
		if bcfg.ModelID == "" {
			slog.Warn("BEDROCK_MODEL_ID is not set; AI analysis is disabled")
			return nil, nil
		}
		b, err := bedrock.NewBedrockCompletion(ctx, bcfg)
		if err != nil {
			return nil, err
		}
		svc, model = b, bcfg.ModelID
	default:
		return nil, fmt.Errorf("unknown COMPLETION_PROVIDER %q", cfg.Provider)
	}

	slog.Info("completion service configured", "provider", cfg.Provider, "model", model, "rpm", cfg.RPM)
	if cfg.RPM > 0 {
		svc = completion.NewRateLimitedCompletion(svc, ratelimiter.NewRateLimiter(cfg.RPM, time.Minute))
	}
	return svc, nil
}
