package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v74/github"
)

// RepositoryHost はソースホスティング API (リポジトリ作成・ファイル配置・Pages 有効化) を抽象化します。
type RepositoryHost interface {
	CreateRepository(ctx context.Context, name, description string) error
	PutFile(ctx context.Context, repo, filePath, message string, content []byte) error
	EnablePages(ctx context.Context, repo, branch string) error
}

// RepositoryCreationError はリポジトリ作成が 201 Created 以外で終わったことを表します。
// Body にはホスティング API が返した生のエラーテキストが入ります。
type RepositoryCreationError struct {
	StatusCode int
	Body       string
}

func (e *RepositoryCreationError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("repository creation failed: %s", e.Body)
	}
	return fmt.Sprintf("repository creation failed with status %d: %s", e.StatusCode, e.Body)
}

// GitHubHost は go-github を使った RepositoryHost の実装です。
type GitHubHost struct {
	client  *github.Client
	owner   string
	timeout time.Duration
}

// NewGitHubHost はトークン認証済みの GitHub クライアントを構築します。
// apiURL が空の場合は https://api.github.com/ を使用します。
func NewGitHubHost(token, owner, apiURL string, timeout time.Duration) (*GitHubHost, error) {
	if token == "" || owner == "" {
		return nil, fmt.Errorf("both GitHub token and owner must be provided")
	}

	client := github.NewClient(nil).WithAuthToken(token)
	if apiURL != "" {
		u, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API URL '%s': %w", apiURL, err)
		}
		client.BaseURL = u
	}

	return &GitHubHost{
		client:  client,
		owner:   owner,
		timeout: timeout,
	}, nil
}

// CreateRepository は認証ユーザー配下に公開・自動初期化済みのリポジトリを作成します。
func (h *GitHubHost) CreateRepository(ctx context.Context, name, description string) error {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	_, resp, err := h.client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.Ptr(name),
		AutoInit:    github.Ptr(true),
		Private:     github.Ptr(false),
		Description: github.Ptr(description),
	})
	if err != nil {
		return newRepositoryCreationError(resp, err)
	}
	if resp.StatusCode != http.StatusCreated {
		body := readBody(resp)
		if body == "" {
			body = http.StatusText(resp.StatusCode)
		}
		return &RepositoryCreationError{StatusCode: resp.StatusCode, Body: body}
	}

	slog.InfoContext(ctx, "Repository created", "owner", h.owner, "repo", name)
	return nil
}

// PutFile はファイルを新規コミットとして配置します。content は未エンコードのまま渡します
// (base64 エンコードは go-github が行います)。
func (h *GitHubHost) PutFile(ctx context.Context, repo, filePath, message string, content []byte) error {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	_, _, err := h.client.Repositories.CreateFile(ctx, h.owner, repo, filePath, &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: content,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to %s/%s: %w", filePath, h.owner, repo, err)
	}
	return nil
}

// EnablePages は指定ブランチをソースとして GitHub Pages を有効化します。
func (h *GitHubHost) EnablePages(ctx context.Context, repo, branch string) error {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	_, _, err := h.client.Repositories.EnablePages(ctx, h.owner, repo, &github.Pages{
		Source: &github.PagesSource{Branch: github.Ptr(branch)},
	})
	if err != nil {
		return fmt.Errorf("failed to enable pages for %s/%s: %w", h.owner, repo, err)
	}
	return nil
}

func (h *GitHubHost) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

// newRepositoryCreationError は go-github のエラーから上流の生テキストを取り出します。
func newRepositoryCreationError(resp *github.Response, err error) *RepositoryCreationError {
	creationErr := &RepositoryCreationError{Body: err.Error()}
	if resp == nil || resp.Response == nil {
		return creationErr
	}

	creationErr.StatusCode = resp.StatusCode
	if body := readBody(resp); body != "" {
		creationErr.Body = body
		return creationErr
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Message != "" {
		creationErr.Body = ghErr.Message
	}
	return creationErr
}

func readBody(resp *github.Response) string {
	if resp == nil || resp.Body == nil {
		return ""
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
