// Package dto はanalysisフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// ErrorResponse はエラー時のレスポンスボディを表します。
type ErrorResponse struct {
	Error string `json:"error"`
}

// フロントエンドが表示するエラーメッセージです。文言はクライアントとの契約のため変更しないでください。
const (
	MsgNoData               = "No data provided"
	MsgNotMeaningful        = "Please provide a more detailed and meaningful business description."
	MsgNotConfigured        = "AI model is not configured. Please check the server configuration (GOOGLE_API_KEY)."
	MsgNotConfiguredBedrock = "AI model is not configured. Please check the server configuration (BEDROCK_MODEL_ID)."
	MsgAnalysisFailed       = "Failed to generate AI analysis. Please try again later."
	MsgBodyTooLarge         = "Request body is too large"
	MsgStatsUnavailable     = "Usage statistics are not available"
	MsgStatsFailed          = "Failed to load usage statistics"
)

// NotConfiguredMessage は生成AIプロバイダーごとに、未設定時に確認すべき設定項目を示すメッセージを返します。
// "bedrock" 以外はGeminiとして扱います。
func NotConfiguredMessage(provider string) string {
	if provider == "bedrock" {
		return MsgNotConfiguredBedrock
	}
	return MsgNotConfigured
}
