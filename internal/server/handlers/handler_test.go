package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"llm-code-deployer/internal/domain"
	"llm-code-deployer/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeployer struct {
	result domain.DeploymentResult
	err    error
	calls  []domain.TaskRequest
}

func (f *fakeDeployer) Execute(_ context.Context, req domain.TaskRequest) (domain.DeploymentResult, error) {
	f.calls = append(f.calls, req)
	return f.result, f.err
}

func intPtr(v int) *int { return &v }

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestHandler_Root(t *testing.T) {
	h := NewHandler(&fakeDeployer{})
	rec := httptest.NewRecorder()

	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"status": "ok", "message": "LLM Code Deployment API active"}, decodeBody(t, rec))
}

func TestHandler_HandleTask(t *testing.T) {
	success := domain.DeploymentResult{
		Status:   domain.StatusOK,
		Task:     "demo_task",
		Round:    intPtr(1),
		RepoURL:  "https://github.com/octo/demo-task",
		PagesURL: "https://octo.github.io/demo-task/",
		Message:  domain.DeployedMessage,
	}

	tests := map[string]struct {
		body      string
		deployer  *fakeDeployer
		want      map[string]any
		wantCalls int
	}{
		"success": {
			body:     `{"secret":"s3cret","brief":"hello page","task":"demo_task"}`,
			deployer: &fakeDeployer{result: success},
			want: map[string]any{
				"status":    "ok",
				"task":      "demo_task",
				"round":     float64(1),
				"repo_url":  "https://github.com/octo/demo-task",
				"pages_url": "https://octo.github.io/demo-task/",
				"message":   "App deployed successfully!",
			},
			wantCalls: 1,
		},
		"invalid secret": {
			body:      `{"secret":"nope","brief":"x"}`,
			deployer:  &fakeDeployer{err: pipeline.ErrInvalidSecret},
			want:      map[string]any{"status": "error", "message": "Invalid secret"},
			wantCalls: 1,
		},
		"explicit round zero is echoed": {
			body:     `{"secret":"s3cret","brief":"x","task":"t","round":0}`,
			deployer: &fakeDeployer{result: domain.DeploymentResult{Status: domain.StatusOK, Task: "t", Round: intPtr(0), Message: domain.DeployedMessage}},
			want: map[string]any{
				"status":  "ok",
				"task":    "t",
				"round":   float64(0),
				"message": "App deployed successfully!",
			},
			wantCalls: 1,
		},
		"unexpected failure": {
			body:      `{"secret":"s3cret","brief":"x"}`,
			deployer:  &fakeDeployer{err: errors.New("boom")},
			want:      map[string]any{"status": "error", "message": "Deployment failed: boom"},
			wantCalls: 1,
		},
		"malformed json": {
			body:     `{"secret":`,
			deployer: &fakeDeployer{},
			want:     map[string]any{"status": "error", "message": "Invalid request body"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(tt.deployer)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api-endpoint", strings.NewReader(tt.body))

			h.HandleTask(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, decodeBody(t, rec))
			assert.Len(t, tt.deployer.calls, tt.wantCalls)
		})
	}
}

func TestHandler_HandleTaskDecodesOptionalFields(t *testing.T) {
	d := &fakeDeployer{result: domain.DeploymentResult{Status: domain.StatusOK}}
	h := NewHandler(d)

	body := `{"secret":"s","brief":"b","task":"t","round":0,"nonce":"n","evaluation_url":"https://eval.example.com","email":"a@b.c"}`
	h.HandleTask(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api-endpoint", strings.NewReader(body)))

	require.Len(t, d.calls, 1)
	got := d.calls[0]
	require.NotNil(t, got.Round)
	assert.Equal(t, 0, *got.Round)
	require.NotNil(t, got.Email)
	assert.Equal(t, "a@b.c", *got.Email)
	assert.Equal(t, "n", got.Nonce)
	assert.Equal(t, "https://eval.example.com", got.EvaluationURL)
}
