// Package bedrock はAmazon Bedrock上のClaudeモデルを使用した補完クライアントを提供します。
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"growth_backend/internal/feature/analysis/usecase"
)

const anthropicVersion = "bedrock-2023-05-31"

// ModelInvoker はbedrockruntime.Clientのうち使用するメソッドだけを抽象化します。
type ModelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockCompletion はBedrockのClaude Messages APIでテキスト補完を生成します。
type BedrockCompletion struct {
	client    ModelInvoker
	modelID   string
	maxTokens int
}

// BedrockCompletionがCompletionServiceを実装していることをコンパイル時に検証します。
var _ usecase.CompletionService = (*BedrockCompletion)(nil)

// NewBedrockCompletion はAWSのデフォルト認証情報チェーンを使用してBedrockCompletionを生成します。
func NewBedrockCompletion(ctx context.Context, cfg Config) (*BedrockCompletion, error) {
	if cfg.ModelID == "" {
		return nil, fmt.Errorf("bedrock model id is empty")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return NewBedrockCompletionWithClient(bedrockruntime.NewFromConfig(awsCfg), cfg), nil
}

// NewBedrockCompletionWithClient は既存のクライアントでBedrockCompletionを生成します。
func NewBedrockCompletionWithClient(client ModelInvoker, cfg Config) *BedrockCompletion {
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &BedrockCompletion{client: client, modelID: cfg.ModelID, maxTokens: maxTokens}
}

type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeMessageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// GenerateContent はプロンプトに対する補完テキストを生成します。
func (b *BedrockCompletion) GenerateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        b.maxTokens,
		Messages:         []claudeMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode bedrock request: %w", err)
	}

	out, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("bedrock InvokeModel failed: %w", err)
	}

	return decodeText(out.Body)
}

// decodeText はClaudeの応答からテキストブロックを連結して返します。
func decodeText(body []byte) (string, error) {
	var resp claudeMessageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode bedrock response: %w", err)
	}

	var text string
	for _, c := range resp.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("bedrock response has no text content (stop_reason=%s)", resp.StopReason)
	}
	return text, nil
}
