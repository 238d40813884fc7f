// Package gemini はGoogle Gemini APIを使用した補完クライアントを提供します。
package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"growth_backend/internal/feature/analysis/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiCompletion はGoogle Gemini APIを使用してテキスト補完を生成します。
type GeminiCompletion struct {
	client *genai.Client
	model  string
}

// GeminiCompletionがCompletionServiceを実装していることをコンパイル時に検証します。
var _ usecase.CompletionService = (*GeminiCompletion)(nil)

// NewGeminiCompletion はAPIキー認証でGeminiCompletionの新しいインスタンスを生成します。
// httpClient が nil の場合はgenaiのデフォルトクライアントを使用します。
func NewGeminiCompletion(ctx context.Context, cfg Config, httpClient *http.Client) (*GeminiCompletion, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiCompletion{client: client, model: model}, nil
}

// Model は使用中のモデル名を返します。
func (g *GeminiCompletion) Model() string {
	return g.model
}

// GenerateContent はプロンプトに対する補完テキストを生成します。
func (g *GeminiCompletion) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini API returned no text")
	}
	return text, nil
}
