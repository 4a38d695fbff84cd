package pipeline

import (
	"context"
	"log/slog"

	"llm-code-deployer/internal/domain"

	"github.com/google/uuid"
)

const autoTaskPrefix = "auto-"

// licenseText はすべての生成リポジトリに配置する MIT ライセンスの定型文です。
const licenseText = `MIT License

Copyright (c) 2025

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files...`

// NewTaskID は "auto-" に続く 8 桁の小文字16進数のタスクIDを生成します。
func NewTaskID() string {
	return autoTaskPrefix + uuid.New().String()[:8]
}

// bestEffort は失敗しても処理を継続する呼び出しです。
// エラーはログに記録して破棄し、呼び出し元には伝播させません。
func bestEffort(ctx context.Context, step string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		slog.WarnContext(ctx, "Best-effort step failed, continuing", "step", step, "error", err)
		return
	}
	slog.DebugContext(ctx, "Best-effort step succeeded", "step", step)
}

// notifyError はエラー発生時に SlackNotifier を通じて通知を行います。
func (p *DeployPipeline) notifyError(ctx context.Context, req domain.NotificationRequest, opErr error) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.NotifyError(ctx, opErr, req); err != nil {
		slog.ErrorContext(ctx, "Failed to send error notification", "error", err)
	}
}
