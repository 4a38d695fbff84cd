package adapters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"llm-code-deployer/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackAdapter_SkipsWithoutWebhook(t *testing.T) {
	a, err := NewSlackAdapter(nil, "")
	require.NoError(t, err)

	req := domain.NotificationRequest{TaskID: "demo_task", RepoName: "demo-task", Round: 1, Brief: "x"}
	assert.NoError(t, a.Notify(context.Background(), "https://github.com/octo/demo-task", "https://octo.github.io/demo-task/", req))
	assert.NoError(t, a.NotifyError(context.Background(), errors.New("boom"), req))
}

func TestSlackAdapter_BuildSlackContent(t *testing.T) {
	a := &SlackAdapter{}
	content := a.buildSlackContent(
		"https://github.com/octo/demo-task",
		"https://octo.github.io/demo-task/",
		domain.NotificationRequest{TaskID: "demo_task", RepoName: "demo-task", Round: 2, Brief: "hello page"},
	)

	assert.Contains(t, content, "`demo_task` (round 2)")
	assert.Contains(t, content, "<https://github.com/octo/demo-task|demo-task>")
	assert.Contains(t, content, "https://octo.github.io/demo-task/")
}

func TestTruncate(t *testing.T) {
	tests := map[string]struct {
		in    string
		limit int
		want  string
	}{
		"short":      {in: "abc", limit: 5, want: "abc"},
		"exact":      {in: "abcde", limit: 5, want: "abcde"},
		"long":       {in: "abcdef", limit: 3, want: "abc…"},
		"multi-byte": {in: strings.Repeat("漫", 4), limit: 2, want: "漫漫…"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.limit))
		})
	}
}
