package builder

import (
	"context"
	"fmt"
	"net/http"

	"llm-code-deployer/internal/adapters"
	"llm-code-deployer/internal/app"
	"llm-code-deployer/internal/config"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// BuildContainer は外部サービスとの接続を確立し、依存関係を組み立てます。
func BuildContainer(ctx context.Context, cfg *config.Config) (*app.Container, error) {
	// 1. 基盤クライアントの初期化
	httpClient := httpkit.New(config.DefaultHTTPTimeout)

	// 2. コード生成クライアント
	generator, err := buildCodeGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// 3. ソースホスティング (GitHub)
	host, err := adapters.NewGitHubHost(cfg.GitHubToken, cfg.GitHubUsername, cfg.GitHubAPIURL, cfg.HostingTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub adapter: %w", err)
	}

	// 4. I/O インフラ (GCS) の初期化。バケット未設定ならアーカイブは無効
	rio, err := buildRemoteIO(ctx, cfg)
	if err != nil {
		return nil, err
	}
	archiver := adapters.NewGCSArchiver(rio.Writer)

	// 5. アダプターの初期化
	slack, err := adapters.NewSlackAdapter(httpClient, cfg.SlackWebhookURL)
	if err != nil {
		closeRemoteIO(rio)
		return nil, fmt.Errorf("failed to initialize Slack adapter: %w", err)
	}

	evaluator := adapters.NewHTTPEvaluationNotifier(&http.Client{}, cfg.EvaluationTimeout)

	return &app.Container{
		Config:         cfg,
		CodeGenerator:  generator,
		RepositoryHost: host,
		Evaluator:      evaluator,
		RemoteIO:       rio,
		Archiver:       archiver,
		SlackNotifier:  slack,
	}, nil
}
