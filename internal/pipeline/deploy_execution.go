package pipeline

import (
	"context"
	"log/slog"
	"time"

	"llm-code-deployer/internal/adapters"
	"llm-code-deployer/internal/config"
	"llm-code-deployer/internal/domain"
)

const (
	defaultRound = 1

	indexFileName   = "index.html"
	licenseFileName = "LICENSE"
	rawResponseName = "response.md"
)

// deployExecution は一回のリクエスト実行に関する状態（タスクID、リポジトリ名など）を保持します。
type deployExecution struct {
	pipeline  *DeployPipeline
	req       domain.TaskRequest
	startTime time.Time
	taskID    string
	round     int
	repoName  string
}

func newDeployExecution(p *DeployPipeline, req domain.TaskRequest, start time.Time) *deployExecution {
	taskID := req.Task
	if taskID == "" {
		taskID = p.newTaskID()
	}
	round := defaultRound
	if req.Round != nil {
		round = *req.Round
	}

	return &deployExecution{
		pipeline:  p,
		req:       req,
		startTime: start,
		taskID:    taskID,
		round:     round,
		repoName:  config.RepoName(taskID),
	}
}

// run は各フェーズを順番に実行し、結果を通知します。
func (e *deployExecution) run(ctx context.Context) (result domain.DeploymentResult, err error) {
	// 失敗時の運用通知を defer 文で一括管理します。
	defer func() {
		if err != nil {
			e.pipeline.notifyError(ctx, e.notificationRequest(), err)
		}
	}()

	slog.InfoContext(ctx, "Pipeline execution started", "task", e.taskID, "round", e.round, "repo", e.repoName)

	// --- Phase 1: Code generation ---
	raw, err := e.pipeline.generator.Generate(ctx, e.req.Brief)
	if err != nil {
		slog.ErrorContext(ctx, "Code generation failed", "task", e.taskID, "error", err)
		return result, &CodeGenerationError{Err: err}
	}
	code := ExtractCode(raw)
	slog.InfoContext(ctx, "Code generated", "task", e.taskID, "bytes", len(code))

	e.archiveArtifacts(ctx, code, raw)

	// --- Phase 2: Repository creation ---
	if err = e.pipeline.host.CreateRepository(ctx, e.repoName, e.req.Brief); err != nil {
		slog.ErrorContext(ctx, "Repository creation failed", "repo", e.repoName, "error", err)
		return result, err
	}

	// --- Phase 3: Uploads & Pages (best-effort) ---
	e.publish(ctx, code)

	cfg := e.pipeline.cfg
	repoURL := cfg.RepoURL(e.repoName)
	pagesURL := cfg.PagesURL(e.repoName)

	// --- Phase 4: Evaluation callback (optional) ---
	if e.req.EvaluationURL != "" {
		e.notifyEvaluation(ctx, repoURL, pagesURL)
	}

	if e.pipeline.notifier != nil {
		if notifyErr := e.pipeline.notifier.Notify(ctx, repoURL, pagesURL, e.notificationRequest()); notifyErr != nil {
			// 通知処理自体の失敗は、デプロイの成否には影響させません。
			slog.ErrorContext(ctx, "Notification failed", "error", notifyErr)
		}
	}

	slog.InfoContext(ctx, "Pipeline execution completed",
		"task", e.taskID,
		"repo_url", repoURL,
		"pages_url", pagesURL,
		"elapsed", time.Since(e.startTime).String(),
	)

	return domain.DeploymentResult{
		Status:   domain.StatusOK,
		Task:     e.taskID,
		Round:    &e.round,
		RepoURL:  repoURL,
		PagesURL: pagesURL,
		Message:  domain.DeployedMessage,
	}, nil
}

// publish は index.html と LICENSE を配置し、Pages を有効化します。
// いずれも失敗しても後続処理を継続します。
func (e *deployExecution) publish(ctx context.Context, code string) {
	host := e.pipeline.host

	bestEffort(ctx, "upload "+indexFileName, func(ctx context.Context) error {
		return host.PutFile(ctx, e.repoName, indexFileName, "Add index.html", []byte(code))
	})
	bestEffort(ctx, "upload "+licenseFileName, func(ctx context.Context) error {
		return host.PutFile(ctx, e.repoName, licenseFileName, "Add LICENSE", []byte(licenseText))
	})
	bestEffort(ctx, "enable pages", func(ctx context.Context) error {
		return host.EnablePages(ctx, e.repoName, config.DefaultBranch)
	})
}

// notifyEvaluation は評価レポートを送信します。失敗はログに残して握りつぶします。
func (e *deployExecution) notifyEvaluation(ctx context.Context, repoURL, pagesURL string) {
	report := domain.EvaluationReport{
		Email:     e.req.Email,
		Task:      e.taskID,
		Round:     e.round,
		Nonce:     e.req.Nonce,
		RepoURL:   repoURL,
		CommitSHA: domain.LatestCommitMarker,
		PagesURL:  pagesURL,
	}

	bestEffort(ctx, "evaluation callback", func(ctx context.Context) error {
		return e.pipeline.evaluator.NotifyEvaluation(ctx, e.req.EvaluationURL, report)
	})
}

// archiveArtifacts は抽出後のコードとモデルの生出力を保存します。
func (e *deployExecution) archiveArtifacts(ctx context.Context, code, raw string) {
	if e.pipeline.archiver == nil {
		return
	}
	cfg := e.pipeline.cfg
	dir := cfg.GetGCSObjectURL(cfg.GetArchiveDir(e.repoName))

	bestEffort(ctx, "archive artifacts", func(ctx context.Context) error {
		return e.pipeline.archiver.Archive(ctx, dir, []adapters.Artifact{
			{Name: indexFileName, Content: []byte(code), ContentType: "text/html; charset=utf-8"},
			{Name: rawResponseName, Content: []byte(raw), ContentType: "text/markdown; charset=utf-8"},
		})
	})
}

func (e *deployExecution) notificationRequest() domain.NotificationRequest {
	return domain.NotificationRequest{
		TaskID:   e.taskID,
		RepoName: e.repoName,
		Round:    e.round,
		Brief:    e.req.Brief,
	}
}
