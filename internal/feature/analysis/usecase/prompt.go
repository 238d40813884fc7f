package usecase

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"

	"growth_backend/internal/feature/analysis/domain/entity"
)

//go:embed prompts.yaml
var promptsYAML []byte

// promptFile は prompts.yaml の構造です。
type promptFile struct {
	Validation string `yaml:"validation"`
	Analysis   string `yaml:"analysis"`
}

// Prompts は入力検証用と分析用のプロンプトテンプレートを保持します。
type Prompts struct {
	validation *template.Template
	analysis   *template.Template
}

// LoadPrompts はYAMLからプロンプトテンプレートを読み込みます。
func LoadPrompts(data []byte) (*Prompts, error) {
	var f promptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}
	if f.Validation == "" || f.Analysis == "" {
		return nil, fmt.Errorf("prompts must define both validation and analysis templates")
	}

	validation, err := template.New("validation").Option("missingkey=error").Parse(f.Validation)
	if err != nil {
		return nil, fmt.Errorf("failed to parse validation prompt: %w", err)
	}
	analysis, err := template.New("analysis").Option("missingkey=error").Parse(f.Analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to parse analysis prompt: %w", err)
	}
	return &Prompts{validation: validation, analysis: analysis}, nil
}

// DefaultPrompts は埋め込みの prompts.yaml を読み込みます。
// 埋め込みファイルはビルド時に固定されるため、失敗はプログラムの誤りとして扱います。
func DefaultPrompts() *Prompts {
	p, err := LoadPrompts(promptsYAML)
	if err != nil {
		panic(err)
	}
	return p
}

// Validation は説明文が事業説明として成立しているかを判定させるプロンプトを生成します。
func (p *Prompts) Validation(description string) (string, error) {
	var buf bytes.Buffer
	if err := p.validation.Execute(&buf, struct{ Description string }{description}); err != nil {
		return "", fmt.Errorf("validation prompt: %w", err)
	}
	return buf.String(), nil
}

// Analysis はSWOT分析と成長プランをJSONで返させるプロンプトを生成します。
func (p *Prompts) Analysis(profile entity.BusinessProfile) (string, error) {
	var buf bytes.Buffer
	if err := p.analysis.Execute(&buf, profile); err != nil {
		return "", fmt.Errorf("analysis prompt: %w", err)
	}
	return buf.String(), nil
}
