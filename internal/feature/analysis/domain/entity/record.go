package entity

import "time"

// Outcome は /analyze リクエストの最終結果の分類です。
type Outcome string

const (
	OutcomeSucceeded     Outcome = "succeeded"
	OutcomeCached        Outcome = "cached"
	OutcomeNoData        Outcome = "no_data"
	OutcomeRejected      Outcome = "rejected"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeFailed        Outcome = "failed"
)

// MaxIndustryLength はAnalysisRecord.Industryに保存する最大文字数（rune数）です。カラムのsizeと一致させます。
const MaxIndustryLength = 128

// AnalysisRecord は分析リクエスト1件分の監査ログです。
// 説明文や生成結果の本文は保持しません。
type AnalysisRecord struct {
	ID         string    `gorm:"primaryKey;size:36"`
	RequestID  string    `gorm:"size:64;index"`
	Industry   string    `gorm:"size:128"`
	Outcome    Outcome   `gorm:"size:32;index;not null"`
	DurationMS int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// UsageStats は監査ログの集計結果です。
type UsageStats struct {
	Total    int64             `json:"total"`
	Outcomes map[Outcome]int64 `json:"outcomes"`
}
