package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"llm-code-deployer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPEvaluationNotifier_NotifyEvaluation(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewHTTPEvaluationNotifier(nil, time.Second)
	err := n.NotifyEvaluation(context.Background(), srv.URL, domain.EvaluationReport{
		Task:      "demo_task",
		Round:     1,
		Nonce:     "abc",
		RepoURL:   "https://github.com/octo/demo-task",
		CommitSHA: domain.LatestCommitMarker,
		PagesURL:  "https://octo.github.io/demo-task/",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{
		"email":      nil,
		"task":       "demo_task",
		"round":      float64(1),
		"nonce":      "abc",
		"repo_url":   "https://github.com/octo/demo-task",
		"commit_sha": "latest",
		"pages_url":  "https://octo.github.io/demo-task/",
	}, gotBody)
}

func TestHTTPEvaluationNotifier_Failures(t *testing.T) {
	tests := map[string]struct {
		url func() string
	}{
		"non-2xx status": {
			url: func() string {
				srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadRequest)
				}))
				t.Cleanup(srv.Close)
				return srv.URL
			},
		},
		"unreachable": {
			url: func() string {
				srv := httptest.NewServer(http.NotFoundHandler())
				u := srv.URL
				srv.Close()
				return u
			},
		},
		"malformed url": {
			url: func() string { return "://bad" },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := NewHTTPEvaluationNotifier(&http.Client{}, time.Second)
			err := n.NotifyEvaluation(context.Background(), tt.url(), domain.EvaluationReport{Task: "t"})
			assert.Error(t, err)
		})
	}
}
