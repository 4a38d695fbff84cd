package handlers

import (
	"net/http"

	"llm-code-deployer/internal/domain"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Root はサービスの稼働状態を返します。
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: domain.StatusOK, Message: serviceActiveMessage})
}
