package pipeline

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"llm-code-deployer/internal/adapters"
	"llm-code-deployer/internal/app"
	"llm-code-deployer/internal/config"
	"llm-code-deployer/internal/domain"
)

const (
	messageInvalidSecret   = "Invalid secret"
	messageRepoFailedFmt   = "GitHub repo creation failed: %s"
	messageCodeGenFailed   = "Code generation failed: %v"
	messageDeployFailedFmt = "Deployment failed: %v"
)

// ErrInvalidSecret はリクエストのシークレットが設定値と一致しない場合のエラーです。
var ErrInvalidSecret = errors.New("invalid secret")

// CodeGenerationError はコード生成 API の呼び出しが失敗したことを表します。
type CodeGenerationError struct {
	Err error
}

func (e *CodeGenerationError) Error() string {
	return "code generation failed: " + e.Err.Error()
}

func (e *CodeGenerationError) Unwrap() error { return e.Err }

// DeployPipeline はタスク受付からデプロイ・評価通知までを直列に実行するオーケストレーターです。
// リクエスト間で共有する可変状態は持ちません。
type DeployPipeline struct {
	cfg       *config.Config
	generator adapters.CodeGenerator
	host      adapters.RepositoryHost
	evaluator adapters.EvaluationNotifier
	archiver  adapters.ArtifactArchiver
	notifier  adapters.SlackNotifier
	newTaskID func() string
}

func NewDeployPipeline(appCtx *app.Container) *DeployPipeline {
	return &DeployPipeline{
		cfg:       appCtx.Config,
		generator: appCtx.CodeGenerator,
		host:      appCtx.RepositoryHost,
		evaluator: appCtx.Evaluator,
		archiver:  appCtx.Archiver,
		notifier:  appCtx.SlackNotifier,
		newTaskID: NewTaskID,
	}
}

// Execute は一件のタスクリクエストを処理します。
// 早期終了するのはシークレット不一致、コード生成失敗、リポジトリ作成失敗の三箇所のみで、
// それ以外の下流呼び出しはベストエフォートです。
// 呼び出し元が切断しても処理は継続し、各呼び出しは個別のタイムアウトのみで打ち切られます。
func (p *DeployPipeline) Execute(ctx context.Context, req domain.TaskRequest) (domain.DeploymentResult, error) {
	ctx = context.WithoutCancel(ctx)

	if !p.authenticate(req.Secret) {
		slog.WarnContext(ctx, "Rejected task with invalid secret", "task", req.Task)
		return domain.DeploymentResult{}, ErrInvalidSecret
	}

	exec := newDeployExecution(p, req, time.Now())
	return exec.run(ctx)
}

func (p *DeployPipeline) authenticate(secret string) bool {
	expected := p.cfg.StudentSecret
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(expected)) == 1
}

// ResultFromError は Execute のエラーを呼び出し元向けのエラーレスポンスへ変換します。
func ResultFromError(err error) domain.DeploymentResult {
	var (
		creationErr *adapters.RepositoryCreationError
		genErr      *CodeGenerationError
	)
	switch {
	case errors.Is(err, ErrInvalidSecret):
		return domain.ErrorResult(messageInvalidSecret)
	case errors.As(err, &creationErr):
		return domain.ErrorResult(fmt.Sprintf(messageRepoFailedFmt, creationErr.Body))
	case errors.As(err, &genErr):
		return domain.ErrorResult(fmt.Sprintf(messageCodeGenFailed, genErr.Err))
	default:
		return domain.ErrorResult(fmt.Sprintf(messageDeployFailedFmt, err))
	}
}
