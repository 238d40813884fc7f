package usecase

import (
	"context"
	"strings"
	"sync"

	"growth_backend/internal/feature/analysis/domain/entity"
)

// mockCompletion はCompletionServiceのモック実装です。
type mockCompletion struct {
	mu    sync.Mutex
	calls []string
	// GenerateContentFunc はGenerateContentが呼ばれたときに実行されます。
	GenerateContentFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockCompletion) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, prompt)
	m.mu.Unlock()
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt)
	}
	return "", nil
}

func (m *mockCompletion) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockCache はAnalysisCacheのモック実装です。
type mockCache struct {
	GetFunc func(ctx context.Context, profile entity.BusinessProfile) (*entity.AnalysisResult, error)
	SetFunc func(ctx context.Context, profile entity.BusinessProfile, result *entity.AnalysisResult) error
}

func (m *mockCache) Get(ctx context.Context, profile entity.BusinessProfile) (*entity.AnalysisResult, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, profile)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, profile entity.BusinessProfile, result *entity.AnalysisResult) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, profile, result)
	}
	return nil
}

// mockRecords はRecordRepositoryのモック実装です。
type mockRecords struct {
	created            []*entity.AnalysisRecord
	CreateFunc         func(ctx context.Context, record *entity.AnalysisRecord) error
	CountByOutcomeFunc func(ctx context.Context) (map[entity.Outcome]int64, error)
}

func (m *mockRecords) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	m.created = append(m.created, record)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *mockRecords) CountByOutcome(ctx context.Context) (map[entity.Outcome]int64, error) {
	if m.CountByOutcomeFunc != nil {
		return m.CountByOutcomeFunc(ctx)
	}
	return map[entity.Outcome]int64{}, nil
}

// isValidationPrompt は入力検証用のプロンプトかどうかを判定します。
func isValidationPrompt(prompt string) bool {
	return strings.Contains(prompt, "Answer with a single word: YES or NO.")
}

const validAnalysisJSON = `{
  "businessName": "Sunrise Bakery",
  "swot": {
    "strengths": ["Fresh local ingredients", "Loyal neighbourhood customers"],
    "weaknesses": ["Small kitchen"],
    "opportunities": ["Catering for offices"],
    "threats": ["Rising flour prices", "Chain bakeries"]
  },
  "growthPlan": [
    "Step 1: Launch a loyalty card.",
    "Step 2: Offer weekday office catering.",
    "Step 3: Open a weekend market stall."
  ]
}`

func sampleProfile() entity.BusinessProfile {
	return entity.BusinessProfile{
		BusinessName:        "Sunrise Bakery",
		Industry:            "Food & Beverage",
		BusinessDescription: "A neighbourhood bakery selling sourdough bread and pastries.",
		BusinessAge:         "1-3 years",
		TeamSize:            "4",
	}
}
