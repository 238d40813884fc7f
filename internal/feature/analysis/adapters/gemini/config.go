package gemini

import "os"

// Config はGemini APIクライアントの設定です。
type Config struct {
	APIKey  string // APIキー（未設定の場合は生成AIを無効化）
	Model   string // モデル名（例: "gemini-2.5-flash"）
	BaseURL string // APIのベースURL（テスト・プロキシ用、通常は空）
}

// LoadConfig は環境変数からGeminiの設定を読み込みます。
// GOOGLE_API_KEY を優先し、未設定なら GEMINI_API_KEY を使用します。
func LoadConfig() Config {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	return Config{
		APIKey:  key,
		Model:   os.Getenv("GEMINI_MODEL"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
	}
}
