// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"growth_backend/internal/feature/analysis/domain"
	"growth_backend/internal/feature/analysis/domain/entity"
	"growth_backend/internal/feature/analysis/transport/http/dto"
	"growth_backend/internal/platform/http/middleware"
	jwtmw "growth_backend/internal/platform/jwt"
)

// MaxBodyBytes は /analyze が受け付けるリクエストボディの上限です。
const MaxBodyBytes = 64 << 10

// AnalysisUsecase は事業分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Submit(ctx context.Context, requestID string, profile *entity.BusinessProfile) (*entity.AnalysisResult, error)
	Stats(ctx context.Context) (*entity.UsageStats, error)
}

// AnalysisHandler は事業分析のHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc               AnalysisUsecase
	notConfiguredMsg string
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
// provider は生成AIが未設定のときのエラーメッセージの選択に使います。
func NewAnalysisHandler(uc AnalysisUsecase, provider string) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, notConfiguredMsg: dto.NotConfiguredMessage(provider)}
}

// Analyze は事業プロファイルを受け取り、SWOT分析と成長プランを返します。
//
// エンドポイント: POST /analyze, POST /api/analyze
// Content-Type: application/json
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	requestID := middleware.RequestIDFromContext(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			slog.Warn("リクエストボディが上限を超えています", "limit", maxErr.Limit, "request_id", requestID)
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: dto.MsgBodyTooLarge})
			return
		}
		slog.Warn("リクエストボディの読み取りに失敗", "error", err, "request_id", requestID)
		raw = nil
	}

	result, err := h.uc.Submit(c.Request.Context(), requestID, decodeProfile(raw))
	if err != nil {
		status, msg := h.errorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("事業分析に失敗", "error", err, "request_id", requestID)
		} else {
			slog.Info("事業分析リクエストを拒否", "reason", err, "request_id", requestID)
		}
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Stats は分析リクエストの結果別件数を返します。
//
// エンドポイント: GET /v1/stats（管理者トークンが必要）
func (h *AnalysisHandler) Stats(c *gin.Context) {
	slog.Info("利用統計を参照", "subject", c.GetString(jwtmw.ContextSubject))

	stats, err := h.uc.Stats(c.Request.Context())
	if errors.Is(err, domain.ErrAuditDisabled) {
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: dto.MsgStatsUnavailable})
		return
	}
	if err != nil {
		slog.Error("利用統計の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.MsgStatsFailed})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// decodeProfile はリクエストボディを事業プロファイルに変換します。
// 空・JSONでない・オブジェクトでない・空オブジェクトの場合は nil を返します。
func decodeProfile(raw []byte) *entity.BusinessProfile {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return nil
	}

	var profile entity.BusinessProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil
	}
	return &profile
}

// errorStatus はユースケースのエラーをHTTPステータスとクライアント向けメッセージに変換します。
func (h *AnalysisHandler) errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoData):
		return http.StatusBadRequest, dto.MsgNoData
	case errors.Is(err, domain.ErrNotMeaningful):
		return http.StatusBadRequest, dto.MsgNotMeaningful
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusInternalServerError, h.notConfiguredMsg
	default:
		return http.StatusInternalServerError, dto.MsgAnalysisFailed
	}
}
