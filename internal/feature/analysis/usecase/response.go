package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"growth_backend/internal/feature/analysis/domain"
	"growth_backend/internal/feature/analysis/domain/entity"
)

// StripCodeFence はモデルがJSONの周囲に付けたMarkdownのコードフェンスや前後の文章を取り除きます。
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	// 前置き・後書きの文章が混ざっている場合は最外のオブジェクトだけを残す
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return s
}

// ParseAnalysis はモデルの応答テキストをAnalysisResultに変換します。
// JSONとして不正、または期待する形（SWOT 4分類・成長プラン3ステップ）を満たさない場合は
// domain.ErrResponseParse を返します。
func ParseAnalysis(text string, profile entity.BusinessProfile) (*entity.AnalysisResult, error) {
	body := StripCodeFence(text)
	if body == "" {
		return nil, fmt.Errorf("%w: empty reply", domain.ErrResponseParse)
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResponseParse, err)
	}
	if err := validateShape(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResponseParse, err)
	}

	if strings.TrimSpace(result.BusinessName) == "" {
		result.BusinessName = profile.BusinessName
	}
	return &result, nil
}

func validateShape(r *entity.AnalysisResult) error {
	categories := []struct {
		name  string
		items []string
	}{
		{"strengths", r.SWOT.Strengths},
		{"weaknesses", r.SWOT.Weaknesses},
		{"opportunities", r.SWOT.Opportunities},
		{"threats", r.SWOT.Threats},
	}
	for _, c := range categories {
		if len(c.items) == 0 {
			return fmt.Errorf("swot.%s is missing or empty", c.name)
		}
		if hasBlank(c.items) {
			return fmt.Errorf("swot.%s contains a blank entry", c.name)
		}
	}

	if len(r.GrowthPlan) != entity.GrowthPlanSteps {
		return fmt.Errorf("growthPlan has %d steps, want %d", len(r.GrowthPlan), entity.GrowthPlanSteps)
	}
	if hasBlank(r.GrowthPlan) {
		return fmt.Errorf("growthPlan contains a blank step")
	}
	return nil
}

func hasBlank(items []string) bool {
	for _, s := range items {
		if strings.TrimSpace(s) == "" {
			return true
		}
	}
	return false
}
