package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
)

const (
	codeGenSystemPrompt = "You are an expert AI code generator."
	codeGenUserPrefix   = "Generate only code no text other than that for this task:\n"
)

// ErrEmptyCompletion はモデルから選択肢が一つも返らなかった場合のエラーです。
var ErrEmptyCompletion = errors.New("no completion choices returned")

// CodeGenerator はタスク概要からソースコードを含むテキストを生成します。
type CodeGenerator interface {
	Generate(ctx context.Context, brief string) (string, error)
}

// BuildUserPrompt はユーザーメッセージを組み立てます。
func BuildUserPrompt(brief string) string {
	return codeGenUserPrefix + brief
}

// OpenAICodeGenerator は OpenAI 互換の Chat Completions API (AIPipe / OpenRouter 等) を使う実装です。
type OpenAICodeGenerator struct {
	client  *openai.Client
	model   shared.ChatModel
	timeout time.Duration
}

// NewOpenAICodeGenerator はベースURLとトークンを指定してクライアントを初期化します。
// リトライは行いません。
func NewOpenAICodeGenerator(baseURL, token, model string, timeout time.Duration) (*OpenAICodeGenerator, error) {
	if baseURL == "" || token == "" {
		return nil, fmt.Errorf("both base url and API token must be provided to create a completion client")
	}
	if model == "" {
		return nil, fmt.Errorf("completion model must not be empty")
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(token),
		option.WithMaxRetries(0),
	)

	return &OpenAICodeGenerator{
		client:  &client,
		model:   shared.ChatModel(model),
		timeout: timeout,
	}, nil
}

// Generate はシステム指示と概要を送り、最初の選択肢の本文を返します。
func (g *OpenAICodeGenerator) Generate(ctx context.Context, brief string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(codeGenSystemPrompt),
			openai.UserMessage(BuildUserPrompt(brief)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
