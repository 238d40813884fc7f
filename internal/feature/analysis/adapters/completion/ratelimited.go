// Package completion は生成AIクライアントに横断的な振る舞いを追加するデコレーターを提供します。
package completion

import (
	"context"
	"fmt"

	"growth_backend/internal/feature/analysis/usecase"
	"growth_backend/internal/shared/ratelimiter"
)

// RateLimitedCompletion はCompletionServiceの呼び出し頻度を制限します。
// 無料枠などのRPM制限を超えないよう、上限に達したら次の区間まで待機します。
type RateLimitedCompletion struct {
	inner   usecase.CompletionService
	limiter ratelimiter.RateLimiterInterface
}

var _ usecase.CompletionService = (*RateLimitedCompletion)(nil)

// NewRateLimitedCompletion はinnerをレートリミッターでラップします。
func NewRateLimitedCompletion(inner usecase.CompletionService, limiter ratelimiter.RateLimiterInterface) *RateLimitedCompletion {
	return &RateLimitedCompletion{inner: inner, limiter: limiter}
}

// GenerateContent は枠が空くのを待ってから内部のクライアントを呼び出します。
func (r *RateLimitedCompletion) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.WaitIfNeeded(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return r.inner.GenerateContent(ctx, prompt)
}
