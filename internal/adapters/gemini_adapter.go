package adapters

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiTemperature = float32(0.2)

// GeminiCodeGenerator は Gemini API を使う CodeGenerator の実装です。
// LLM_PROVIDER=gemini の場合に選択されます。
type GeminiCodeGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiCodeGenerator は gemini クライアントを初期化します。
// baseURL が空の場合は SDK の既定エンドポイントを使用します。
func NewGeminiCodeGenerator(ctx context.Context, apiKey, model, baseURL string, timeout time.Duration) (*GeminiCodeGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model must not be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}

	return &GeminiCodeGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Generate は概要からコードを生成します。候補が返らない場合はエラーです。
func (g *GeminiCodeGenerator) Generate(ctx context.Context, brief string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(BuildUserPrompt(brief)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(codeGenSystemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr(defaultGeminiTemperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Text(), nil
}
