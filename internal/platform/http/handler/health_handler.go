// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadinessReporter は生成AIの設定状態を報告します。
type ReadinessReporter interface {
	Configured() bool
}

// NewHealth はサービスヘルスチェック用の /healthz エンドポイントのハンドラーを返します。
// 生成AIが未設定でもプロセス自体は稼働しているため、常に200を返し本文で状態を示します。
func NewHealth(r ReadinessReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			completion := "unconfigured"
			if r != nil && r.Configured() {
				completion = "configured"
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok", "completion": completion})
		}
	}
}
