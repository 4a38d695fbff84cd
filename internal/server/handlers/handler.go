package handlers

import (
	"context"

	"llm-code-deployer/internal/domain"
)

const serviceActiveMessage = "LLM Code Deployment API active"

// Deployer はタスクリクエストを受け取り、デプロイを実行する責務を抽象化します。
type Deployer interface {
	Execute(ctx context.Context, req domain.TaskRequest) (domain.DeploymentResult, error)
}

type Handler struct {
	deployer Deployer
}

// NewHandler は指定されたデプロイ実行者でハンドラーを初期化します。
func NewHandler(deployer Deployer) *Handler {
	return &Handler{deployer: deployer}
}
