package builder

import (
	"context"
	"testing"
	"time"

	"llm-code-deployer/internal/adapters"
	"llm-code-deployer/internal/config"
	"llm-code-deployer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCodeGenerator(t *testing.T) {
	tests := map[string]struct {
		cfg      config.Config
		wantType any
		wantErr  bool
	}{
		"openai": {
			cfg: config.Config{
				LLMProvider:      config.ProviderOpenAI,
				CompletionAPIURL: config.DefaultCompletionAPIURL,
				CompletionToken:  "tok",
				CompletionModel:  config.DefaultCompletionModel,
			},
			wantType: &adapters.OpenAICodeGenerator{},
		},
		"gemini": {
			cfg: config.Config{
				LLMProvider:  config.ProviderGemini,
				GeminiAPIKey: "key",
				GeminiModel:  config.DefaultGeminiModel,
			},
			wantType: &adapters.GeminiCodeGenerator{},
		},
		"openai without token": {
			cfg:     config.Config{LLMProvider: config.ProviderOpenAI, CompletionAPIURL: config.DefaultCompletionAPIURL, CompletionModel: "m"},
			wantErr: true,
		},
		"unsupported provider": {
			cfg:     config.Config{LLMProvider: "other"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.CompletionTimeout = time.Second

			gen, err := buildCodeGenerator(context.Background(), &cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, gen)
		})
	}
}

func TestBuildRemoteIO_DisabledWithoutBucket(t *testing.T) {
	rio, err := buildRemoteIO(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, rio.Factory)
	assert.Nil(t, rio.Writer)
}

type nopDeployer struct{}

func (nopDeployer) Execute(context.Context, domain.TaskRequest) (domain.DeploymentResult, error) {
	return domain.DeploymentResult{}, nil
}

func TestBuildHandlers(t *testing.T) {
	_, err := BuildHandlers(nil)
	assert.Error(t, err)

	h, err := BuildHandlers(nopDeployer{})
	require.NoError(t, err)
	assert.NotNil(t, h.Web)
}
