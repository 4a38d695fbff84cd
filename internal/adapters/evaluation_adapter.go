package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"llm-code-deployer/internal/domain"
)

// EvaluationNotifier は評価コールバックへデプロイ結果を通知します。
type EvaluationNotifier interface {
	NotifyEvaluation(ctx context.Context, callbackURL string, report domain.EvaluationReport) error
}

// HTTPEvaluationNotifier は JSON を POST するだけの素朴な実装です。
type HTTPEvaluationNotifier struct {
	client  *http.Client
	timeout time.Duration
}

func NewHTTPEvaluationNotifier(client *http.Client, timeout time.Duration) *HTTPEvaluationNotifier {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPEvaluationNotifier{client: client, timeout: timeout}
}

// NotifyEvaluation はレポートを送信します。2xx 以外のステータスはエラーとして返します。
func (n *HTTPEvaluationNotifier) NotifyEvaluation(ctx context.Context, callbackURL string, report domain.EvaluationReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal evaluation report: %w", err)
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build evaluation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("evaluation POST failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	slog.InfoContext(ctx, "Evaluation POST completed", "status", resp.StatusCode, "task", report.Task)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("evaluation endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
