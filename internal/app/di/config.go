package di

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"growth_backend/internal/feature/analysis/usecase"
	"growth_backend/internal/platform/cache"
)

const (
	// ProviderGemini はGoogle Geminiを使用します（デフォルト）。
	ProviderGemini = "gemini"
	// ProviderBedrock はAmazon Bedrock上のClaudeを使用します。
	ProviderBedrock = "bedrock"
)

// Config はアプリケーション全体の設定です。各アダプターの詳細設定はそれぞれの LoadConfig で読み込みます。
type Config struct {
	Provider       string        // COMPLETION_PROVIDER
	RPM            int           // COMPLETION_RPM（0は無制限）
	Timeout        time.Duration // COMPLETION_TIMEOUT
	MaxAttempts    int           // ANALYSIS_MAX_ATTEMPTS
	CacheTTL       time.Duration // ANALYSIS_CACHE_TTL
	AllowedOrigins []string      // CORS_ALLOWED_ORIGINS（空は全許可）
}

// LoadConfig は環境変数からアプリケーション設定を読み込みます。
func LoadConfig() Config {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("COMPLETION_PROVIDER")))
	if provider == "" {
		provider = ProviderGemini
	}
	return Config{
		Provider:       provider,
		RPM:            envInt("COMPLETION_RPM", 0),
		Timeout:        envDuration("COMPLETION_TIMEOUT", usecase.DefaultTimeout),
		MaxAttempts:    envInt("ANALYSIS_MAX_ATTEMPTS", usecase.DefaultMaxAttempts),
		CacheTTL:       envDuration("ANALYSIS_CACHE_TTL", cache.DefaultTTL),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid integer env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

// envDuration は "30s" のようなGoの期間表記か、秒数の整数を受け付けます。
func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	slog.Warn("invalid duration env, using default", "key", key, "value", v, "default", def)
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
