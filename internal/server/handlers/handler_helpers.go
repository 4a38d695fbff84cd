package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// maxRequestBodyBytes はタスクリクエスト本文の上限です。
const maxRequestBodyBytes = 1 << 20

// writeJSON は値を JSON にエンコードし、レスポンスを書き込みます。
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("レスポンスのエンコードに失敗しました", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("レスポンスの書き込みに失敗しました", "error", err)
	}
}
