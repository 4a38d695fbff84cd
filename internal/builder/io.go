package builder

import (
	"context"
	"fmt"
	"log/slog"

	"llm-code-deployer/internal/app"
	"llm-code-deployer/internal/config"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// buildRemoteIO は、GCS ベースの I/O コンポーネントを初期化します。
// ARCHIVE_BUCKET が未設定の場合は空の RemoteIO を返します。
func buildRemoteIO(ctx context.Context, cfg *config.Config) (*app.RemoteIO, error) {
	if cfg.ArchiveBucket == "" {
		return &app.RemoteIO{}, nil
	}

	factory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS factory: %w", err)
	}
	w, err := factory.OutputWriter()
	if err != nil {
		if closeErr := factory.Close(); closeErr != nil {
			slog.Error("failed to close IOFactory", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create output writer: %w", err)
	}
	return &app.RemoteIO{
		Factory: factory,
		Writer:  w,
	}, nil
}

func closeRemoteIO(rio *app.RemoteIO) {
	if rio == nil || rio.Factory == nil {
		return
	}
	if err := rio.Factory.Close(); err != nil {
		slog.Error("failed to close IOFactory", "error", err)
	}
}
