package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"llm-code-deployer/internal/domain"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-notifier/pkg/factory"
	"github.com/shouni/go-notifier/pkg/slack"
)

const maxBriefLength = 200

// --- インターフェース定義 ---

type SlackNotifier interface {
	Notify(ctx context.Context, repoURL, pagesURL string, req domain.NotificationRequest) error
	NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error
}

// --- 具象アダプター ---

type SlackAdapter struct {
	httpClient  httpkit.ClientInterface
	webhookURL  string
	slackClient *slack.Client
}

// NewSlackAdapter は Slack 通知アダプターを生成します。
// webhookURL が空の場合は通知をスキップするアダプターを返します。
func NewSlackAdapter(httpClient httpkit.ClientInterface, webhookURL string) (*SlackAdapter, error) {
	if webhookURL == "" {
		return &SlackAdapter{webhookURL: webhookURL}, nil
	}
	client, err := factory.GetSlackClient(httpClient)
	if err != nil {
		return nil, fmt.Errorf("Slackクライアントの初期化に失敗しました: %w", err)
	}

	return &SlackAdapter{
		httpClient:  httpClient,
		webhookURL:  webhookURL,
		slackClient: client,
	}, nil
}

// Notify はデプロイ完了時に公開URLを含む通知を送信します。
func (a *SlackAdapter) Notify(ctx context.Context, repoURL, pagesURL string, req domain.NotificationRequest) error {
	if a.slackClient == nil {
		slog.InfoContext(ctx, "Slackクライアントが初期化されていないため、通知をスキップします。", "repo", req.RepoName)
		return nil
	}

	title := "🚀 アプリのデプロイが完了しました！"
	content := a.buildSlackContent(repoURL, pagesURL, req)

	if err := a.slackClient.SendTextWithHeader(ctx, title, content); err != nil {
		return fmt.Errorf("Slackへの投稿に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "Slack に完了通知を送信しました。", "pages_url", pagesURL)
	return nil
}

// NotifyError はエラー詳細とタスク情報を含むエラー通知を送信します。
func (a *SlackAdapter) NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error {
	if a.slackClient == nil {
		slog.InfoContext(ctx, "Slackクライアントが初期化されていないため、エラー通知をスキップします。", "error", errDetail)
		return nil
	}

	title := "❌ デプロイ中にエラーが発生しました"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*タスク:* `%s` (round %d)\n", req.TaskID, req.Round))
	if req.RepoName != "" {
		sb.WriteString(fmt.Sprintf("*リポジトリ:* `%s`\n", req.RepoName))
	}
	sb.WriteString(fmt.Sprintf("*概要:* %s\n\n", truncate(req.Brief, maxBriefLength)))

	sb.WriteString("*エラー内容:*\n")
	sb.WriteString(fmt.Sprintf("```\n%v\n```\n", errDetail))

	if err := a.slackClient.SendTextWithHeader(ctx, title, sb.String()); err != nil {
		return fmt.Errorf("Slackへのエラー通知に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "Slack にエラー通知を送信しました。", "error", errDetail)
	return nil
}

func (a *SlackAdapter) buildSlackContent(repoURL, pagesURL string, req domain.NotificationRequest) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**タスク:** `%s` (round %d)\n", req.TaskID, req.Round))
	sb.WriteString(fmt.Sprintf("**概要:** %s\n\n", truncate(req.Brief, maxBriefLength)))
	sb.WriteString(fmt.Sprintf("📂 **リポジトリ:** <%s|%s>\n", repoURL, req.RepoName))
	if pagesURL != "" {
		sb.WriteString(fmt.Sprintf("🌐 **Pages:** <%s|ブラウザで確認する>\n", pagesURL))
	}
	sb.WriteString("_Pages の公開反映には数分かかる場合があります。_")
	return sb.String()
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "…"
}
