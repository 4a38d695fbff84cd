package app

import (
	"log/slog"

	"llm-code-deployer/internal/adapters"
	"llm-code-deployer/internal/config"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// Container はアプリケーションの依存関係（DIコンテナ）を保持します。
type Container struct {
	Config *config.Config

	// Code generation
	CodeGenerator adapters.CodeGenerator

	// Source hosting
	RepositoryHost adapters.RepositoryHost

	// Evaluation callback
	Evaluator adapters.EvaluationNotifier

	// I/O and Storage (ARCHIVE_BUCKET 未設定時は Factory が nil)
	RemoteIO *RemoteIO
	Archiver adapters.ArtifactArchiver

	// External Adapters
	SlackNotifier adapters.SlackNotifier
}

type RemoteIO struct {
	Factory remoteio.IOFactory
	Writer  remoteio.OutputWriter
}

// Close は、Container が保持するすべての外部接続リソースを安全に解放します。
func (c *Container) Close() {
	if c.RemoteIO != nil && c.RemoteIO.Factory != nil {
		if err := c.RemoteIO.Factory.Close(); err != nil {
			slog.Error("failed to close IOFactory", "error", err)
		}
	}
}
