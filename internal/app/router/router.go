// Package router はHTTPルーティングを定義します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "growth_backend/internal/feature/analysis/transport/handler"
	"growth_backend/internal/platform/http/middleware"
	jwtmw "growth_backend/internal/platform/jwt"
)

// Handlers はルーターに登録するハンドラーの集合です。
type Handlers struct {
	Analysis *analysishandler.AnalysisHandler
	Health   gin.HandlerFunc
}

// NewRouter はルーティング済みのgin.Engineを生成します。
// allowedOrigins が空の場合は全てのオリジンを許可します。
func NewRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(corsMiddleware(allowedOrigins))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	// 事業分析（/api/analyze はフロントエンドが使用するパス）
	r.POST("/analyze", h.Analysis.Analyze)
	r.POST("/api/analyze", h.Analysis.Analyze)

	// 管理者トークン必須のルート
	admin := r.Group("/v1")
	admin.Use(jwtmw.AdminRequired())
	{
		admin.GET("/stats", h.Analysis.Stats)
	}

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
