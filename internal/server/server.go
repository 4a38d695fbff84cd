package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"llm-code-deployer/internal/builder"
	"llm-code-deployer/internal/config"
	"llm-code-deployer/internal/pipeline"
)

// デフォルトのシャットダウン猶予時間
const defaultShutdownTimeout = 30 * time.Second

// Run は、設定ロード、バリデーション、サーバーのライフサイクル管理を行います。
func Run(ctx context.Context) error {
	cfg := config.LoadConfig()
	if err := config.ValidateEssentialConfig(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	appCtx, err := builder.BuildContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build application context: %w", err)
	}
	defer func() {
		slog.Info("♻️ Closing application context...")
		appCtx.Close()
	}()

	// 1. ハンドラーの組み立て
	deployPipeline := pipeline.NewDeployPipeline(appCtx)
	h, err := builder.BuildHandlers(deployPipeline)
	if err != nil {
		return fmt.Errorf("failed to build handlers: %w", err)
	}

	// 2. ルーターの構築
	router := NewRouter(h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- サーバー起動とシグナル待機 ---
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("🚀 Server starting...", "port", cfg.Port, "provider", cfg.LLMProvider, "owner", cfg.GitHubUsername)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case <-ctx.Done():
		slog.Info("⚠️ Context cancelled, shutting down...")
		return shutdownServer(srv, cfg.ShutdownTimeout)

	case <-shutdown:
		slog.Info("⚠️ Starting graceful shutdown...")
		return shutdownServer(srv, cfg.ShutdownTimeout)
	}

	return nil
}

// shutdownServer はグレースフルシャットダウンを行い、失敗時は強制的にクローズします。
func shutdownServer(srv *http.Server, timeout time.Duration) error {
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed, forcing close", "error", err)

		// シャットダウンに失敗した場合は強制的にクローズしてリソースを解放する
		if closeErr := srv.Close(); closeErr != nil {
			return fmt.Errorf("could not stop server: shutdown error: %v, close error: %v", err, closeErr)
		}
		return fmt.Errorf("could not stop server gracefully: %w", err)
	}

	slog.Info("✅ Server stopped cleanly")
	return nil
}
