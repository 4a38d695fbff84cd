package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"llm-code-deployer/internal/domain"
	"llm-code-deployer/internal/pipeline"
)

const messageInvalidBody = "Invalid request body"

// HandleTask は /api-endpoint へのタスクリクエストを処理します。
// エラーも含め、常に 200 で JSON を返します（エラーは status:"error" で表現）。
func (h *Handler) HandleTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.TaskRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&req); err != nil {
		slog.WarnContext(ctx, "Failed to decode task request", "error", err)
		writeJSON(w, http.StatusOK, domain.ErrorResult(messageInvalidBody))
		return
	}

	// シークレットはログに出さない
	slog.InfoContext(ctx, "Received task",
		"task", req.Task,
		"round", req.Round,
		"has_evaluation_url", req.EvaluationURL != "",
	)

	result, err := h.deployer.Execute(ctx, req)
	if err != nil {
		writeJSON(w, http.StatusOK, pipeline.ResultFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}
