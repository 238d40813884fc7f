package entity

// SWOT は強み・弱み・機会・脅威の4分類の分析結果です。
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// AnalysisResult はAIが生成したSWOT分析と成長プランです。
// リクエストごとに生成され、保存はされません（キャッシュはTTL付きの一時保存）。
type AnalysisResult struct {
	BusinessName string   `json:"businessName"`
	SWOT         SWOT     `json:"swot"`
	GrowthPlan   []string `json:"growthPlan"`
}

// GrowthPlanSteps は成長プランのステップ数です。
const GrowthPlanSteps = 3
