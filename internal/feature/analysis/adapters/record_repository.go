// Package adapters はanalysisフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"growth_backend/internal/feature/analysis/domain/entity"
	"growth_backend/internal/feature/analysis/usecase"
)

// recordRepository はRecordRepositoryインターフェースのGORM実装です。
// PostgreSQL・SQLiteのどちらでも動作します。
type recordRepository struct {
	db *gorm.DB
}

// recordRepositoryがRecordRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RecordRepository = (*recordRepository)(nil)

// NewRecordRepository は指定されたgorm.DB接続でrecordRepositoryの新しいインスタンスを生成します。
func NewRecordRepository(db *gorm.DB) *recordRepository {
	return &recordRepository{db: db}
}

// Create は監査ログを1件追加します。
func (r *recordRepository) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	if record == nil {
		return errors.New("record is nil")
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// outcomeCount はCountByOutcomeの集計行です。
type outcomeCount struct {
	Outcome entity.Outcome
	Count   int64
}

// CountByOutcome は結果別の件数を返します。
func (r *recordRepository) CountByOutcome(ctx context.Context) (map[entity.Outcome]int64, error) {
	var rows []outcomeCount
	err := r.db.WithContext(ctx).
		Model(&entity.AnalysisRecord{}).
		Select("outcome, COUNT(*) AS count").
		Group("outcome").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[entity.Outcome]int64, len(rows))
	for _, row := range rows {
		out[row.Outcome] = row.Count
	}
	return out, nil
}
