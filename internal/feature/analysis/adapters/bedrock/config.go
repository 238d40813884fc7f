package bedrock

import (
	"os"
	"strconv"
)

// DefaultMaxTokens はClaudeへのリクエストで使う最大出力トークン数のデフォルトです。
const DefaultMaxTokens = 1024

// Config はAmazon Bedrockクライアントの設定です。
type Config struct {
	Region    string // AWSリージョン
	ModelID   string // BedrockのモデルID（未設定の場合は生成AIを無効化）
	MaxTokens int    // 最大出力トークン数
}

// LoadConfig は環境変数からBedrockの設定を読み込みます。
func LoadConfig() Config {
	maxTokens, err := strconv.Atoi(os.Getenv("BEDROCK_MAX_TOKENS"))
	if err != nil || maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return Config{
		Region:    os.Getenv("AWS_REGION"),
		ModelID:   os.Getenv("BEDROCK_MODEL_ID"),
		MaxTokens: maxTokens,
	}
}
