// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"growth_backend/internal/feature/analysis/domain"
	"growth_backend/internal/feature/analysis/domain/entity"
)

const (
	// MinDescriptionLength はAI判定に回す前に要求する説明文の最小文字数（rune数）です。
	MinDescriptionLength = 15
	// DefaultTimeout は生成AI呼び出し1回あたりのデフォルトのタイムアウトです。
	DefaultTimeout = 30 * time.Second
	// DefaultMaxAttempts は応答のパースに失敗したときに再生成を含めて試行する回数です。
	DefaultMaxAttempts = 2
)

// CompletionService は生成AIのテキスト補完を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CompletionService interface {
	// GenerateContent はプロンプトに対する補完テキストを返します。
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AnalysisCache は分析結果の一時キャッシュです。
type AnalysisCache interface {
	// Get はキャッシュ済みの結果を返します。存在しない場合は (nil, nil) を返します。
	Get(ctx context.Context, profile entity.BusinessProfile) (*entity.AnalysisResult, error)
	// Set は結果をキャッシュに保存します。
	Set(ctx context.Context, profile entity.BusinessProfile, result *entity.AnalysisResult) error
}

// RecordRepository は分析リクエストの監査ログを保存・集計します。
type RecordRepository interface {
	Create(ctx context.Context, record *entity.AnalysisRecord) error
	CountByOutcome(ctx context.Context) (map[entity.Outcome]int64, error)
}

// Config はanalysisUsecaseの動作設定です。
type Config struct {
	Timeout     time.Duration // 生成AI呼び出し1回のタイムアウト
	MaxAttempts int           // パース失敗時の再生成を含む最大試行回数
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}

// analysisUsecase は入力検証・プロンプト生成・応答パースを行います。
type analysisUsecase struct {
	completion CompletionService
	cache      AnalysisCache
	records    RecordRepository
	prompts    *Prompts
	cfg        Config
	now        func() time.Time
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
// completion が nil の場合は生成AIが未設定として扱います。cache と records は nil を許容します。
func NewAnalysisUsecase(completion CompletionService, cache AnalysisCache, records RecordRepository, cfg Config) *analysisUsecase {
	return &analysisUsecase{
		completion: completion,
		cache:      cache,
		records:    records,
		prompts:    DefaultPrompts(),
		cfg:        cfg.withDefaults(),
		now:        time.Now,
	}
}

// Configured は生成AIが利用可能かどうかを返します。
func (u *analysisUsecase) Configured() bool {
	return u.completion != nil
}

// ValidateDescription は説明文が意味のある事業説明かどうかを判定します。
// 短すぎる説明文は常に拒否します。それ以外は生成AIに判定させますが、
// 生成AIが未設定・呼び出し失敗の場合は利用者をブロックしないよう許可します。
func (u *analysisUsecase) ValidateDescription(ctx context.Context, description string) bool {
	if utf8.RuneCountInString(strings.TrimSpace(description)) < MinDescriptionLength {
		return false
	}
	if u.completion == nil {
		return true
	}

	prompt, err := u.prompts.Validation(description)
	if err != nil {
		slog.Error("入力検証プロンプトの生成に失敗", "error", err)
		return true
	}

	reply, err := u.generate(ctx, prompt)
	if err != nil {
		slog.Warn("入力検証の呼び出しに失敗したため許可します", "error", err)
		return true
	}

	decision := strings.ToUpper(strings.TrimSpace(reply))
	slog.Info("入力検証", "decision", decision, "description_length", len(description))
	return strings.Contains(decision, "YES")
}

// Analyze は事業プロファイルからSWOT分析と成長プランを生成します。
func (u *analysisUsecase) Analyze(ctx context.Context, profile entity.BusinessProfile) (*entity.AnalysisResult, error) {
	result, _, err := u.analyze(ctx, profile)
	return result, err
}

func (u *analysisUsecase) analyze(ctx context.Context, profile entity.BusinessProfile) (*entity.AnalysisResult, bool, error) {
	if u.completion == nil {
		return nil, false, domain.ErrNotConfigured
	}

	if u.cache != nil {
		cached, err := u.cache.Get(ctx, profile)
		if err != nil {
			slog.Warn("分析キャッシュの取得に失敗", "error", err)
		} else if cached != nil {
			return cached, true, nil
		}
	}

	prompt, err := u.prompts.Analysis(profile)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrResponseParse, err)
	}

	var lastErr error
	for attempt := 1; attempt <= u.cfg.MaxAttempts; attempt++ {
		reply, err := u.generate(ctx, prompt)
		if err != nil {
			// 生成AI自体の失敗は再試行しない
			return nil, false, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
		}

		result, err := ParseAnalysis(reply, profile)
		if err == nil {
			if u.cache != nil {
				if err := u.cache.Set(ctx, profile, result); err != nil {
					slog.Warn("分析キャッシュの保存に失敗", "error", err)
				}
			}
			return result, false, nil
		}
		lastErr = err
		slog.Warn("分析結果のパースに失敗", "attempt", attempt, "max_attempts", u.cfg.MaxAttempts, "error", err)
	}
	return nil, false, lastErr
}

// Submit は /analyze の一連の処理（入力確認→検証→分析）を実行し、結果を監査ログに記録します。
// profile が nil の場合はリクエストボディが空、またはJSONオブジェクトとして解釈できなかったものとして扱います。
// 項目が揃っていないだけのプロファイルは入力検証で拒否されます。
func (u *analysisUsecase) Submit(ctx context.Context, requestID string, profile *entity.BusinessProfile) (*entity.AnalysisResult, error) {
	start := u.now()
	industry := ""
	if profile != nil {
		industry = profile.Industry
	}

	result, outcome, err := u.submit(ctx, profile)
	u.record(ctx, requestID, industry, outcome, u.now().Sub(start))
	return result, err
}

func (u *analysisUsecase) submit(ctx context.Context, profile *entity.BusinessProfile) (*entity.AnalysisResult, entity.Outcome, error) {
	if profile == nil {
		return nil, entity.OutcomeNoData, domain.ErrNoData
	}
	if !u.ValidateDescription(ctx, profile.BusinessDescription) {
		return nil, entity.OutcomeRejected, domain.ErrNotMeaningful
	}

	result, cached, err := u.analyze(ctx, *profile)
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return nil, entity.OutcomeNotConfigured, err
	case err != nil:
		return nil, entity.OutcomeFailed, err
	case cached:
		return result, entity.OutcomeCached, nil
	default:
		return result, entity.OutcomeSucceeded, nil
	}
}

// record は監査ログをベストエフォートで保存します。
func (u *analysisUsecase) record(ctx context.Context, requestID, industry string, outcome entity.Outcome, elapsed time.Duration) {
	if u.records == nil {
		return
	}
	rec := &entity.AnalysisRecord{
		ID:         uuid.NewString(),
		RequestID:  requestID,
		Industry:   clampIndustry(industry),
		Outcome:    outcome,
		DurationMS: elapsed.Milliseconds(),
		CreatedAt:  u.now(),
	}
	if err := u.records.Create(ctx, rec); err != nil {
		slog.Warn("監査ログの保存に失敗", "error", err, "request_id", requestID)
	}
}

// clampIndustry はクライアント入力の業種をカラムに収まる有効なUTF-8文字列に整えます。
func clampIndustry(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if utf8.RuneCountInString(s) <= entity.MaxIndustryLength {
		return s
	}
	return string([]rune(s)[:entity.MaxIndustryLength])
}

// Stats は監査ログの結果別件数を返します。
func (u *analysisUsecase) Stats(ctx context.Context) (*entity.UsageStats, error) {
	if u.records == nil {
		return nil, domain.ErrAuditDisabled
	}
	counts, err := u.records.CountByOutcome(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count analysis records: %w", err)
	}

	stats := &entity.UsageStats{Outcomes: counts}
	if stats.Outcomes == nil {
		stats.Outcomes = map[entity.Outcome]int64{}
	}
	for _, n := range stats.Outcomes {
		stats.Total += n
	}
	return stats, nil
}

// generate はタイムアウト付きで生成AIを呼び出します。
func (u *analysisUsecase) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.cfg.Timeout)
	defer cancel()
	return u.completion.GenerateContent(ctx, prompt)
}
