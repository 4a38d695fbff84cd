package builder

import (
	"context"
	"fmt"

	"llm-code-deployer/internal/adapters"
	"llm-code-deployer/internal/config"
)

// buildCodeGenerator は LLM_PROVIDER に応じてコード生成クライアントを構築します。
func buildCodeGenerator(ctx context.Context, cfg *config.Config) (adapters.CodeGenerator, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return initializeGeminiClient(ctx, cfg)
	case config.ProviderOpenAI, "":
		generator, err := adapters.NewOpenAICodeGenerator(cfg.CompletionAPIURL, cfg.CompletionToken, cfg.CompletionModel, cfg.CompletionTimeout)
		if err != nil {
			return nil, fmt.Errorf("completion クライアントの初期化に失敗しました: %w", err)
		}
		return generator, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

// initializeGeminiClient は gemini クライアントを初期化します。
func initializeGeminiClient(ctx context.Context, cfg *config.Config) (adapters.CodeGenerator, error) {
	generator, err := adapters.NewGeminiCodeGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "", cfg.CompletionTimeout)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return generator, nil
}
