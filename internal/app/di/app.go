package di

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"growth_backend/internal/app/router"
	analysisadapters "growth_backend/internal/feature/analysis/adapters"
	analysishandler "growth_backend/internal/feature/analysis/transport/handler"
	"growth_backend/internal/feature/analysis/usecase"
	"growth_backend/internal/platform/cache"
	infradb "growth_backend/internal/platform/db"
	"growth_backend/internal/platform/http/handler"
	infraredis "growth_backend/internal/platform/redis"
)

// App はHTTPルーターと、終了時に解放すべきリソースを保持します。
type App struct {
	Router *gin.Engine
	rdb    *redisv9.Client
	db     *gorm.DB
}

// Build は環境変数から全ての依存関係を組み立て、ルーティング済みのAppを返します。
// ローカルサーバー・Lambda・Vercelのいずれのエントリーポイントもこの関数を使用します。
// Redisとデータベースは任意で、接続できない場合は無効のまま起動します。
func Build(ctx context.Context) (*App, error) {
	cfg := LoadConfig()
	app := &App{}

	// 生成AI
	completionSvc, err := NewCompletion(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Redis
	rdb, err := infraredis.NewRedisClient(ctx)
	if err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
		rdb = nil
	}
	app.rdb = rdb

	// DB（監査ログ）
	var records usecase.RecordRepository
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		slog.Warn("Database unavailable. Running without audit log.", "error", err)
		db = nil
	}
	if db != nil {
		app.db = db
		records = analysisadapters.NewRecordRepository(db)
	}

	// Redisキャッシュ
	var analysisCache usecase.AnalysisCache
	if rdb != nil {
		analysisCache = cache.NewAnalysisCache(rdb, cfg.CacheTTL, cache.DefaultNamespace)
	}

	// Usecase
	analysisUC := usecase.NewAnalysisUsecase(completionSvc, analysisCache, records, usecase.Config{
		Timeout:     cfg.Timeout,
		MaxAttempts: cfg.MaxAttempts,
	})

	// Handler
	analysisH := analysishandler.NewAnalysisHandler(analysisUC, cfg.Provider)
	healthH := handler.NewHealth(analysisUC)

	// ルータ生成
	app.Router = router.NewRouter(router.Handlers{
		Analysis: analysisH,
		Health:   healthH,
	}, cfg.AllowedOrigins)

	return app, nil
}

// Close はRedisとデータベースの接続を閉じます。
func (a *App) Close() error {
	var errs []error
	if a.rdb != nil {
		errs = append(errs, a.rdb.Close())
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
