package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/shouni/netarmor/securenet"
)

// RepoName はタスクIDからリポジトリ名を導出します。アンダースコアはハイフンに置き換えます。
func RepoName(taskID string) string {
	return strings.ReplaceAll(taskID, "_", "-")
}

// RepoURL はリポジトリの公開URLを返します。例: "https://github.com/octo/demo-task"
func (c Config) RepoURL(repo string) string {
	return fmt.Sprintf("https://%s/%s/%s", GitHubHost, c.GitHubUsername, repo)
}

// PagesURL は GitHub Pages の公開URLを返します。例: "https://octo.github.io/demo-task/"
func (c Config) PagesURL(repo string) string {
	return fmt.Sprintf("https://%s.%s/%s/", c.GitHubUsername, GitHubPagesDomain, repo)
}

// GetArchiveDir はリポジトリごとの保存先ディレクトリを返します。
func (c Config) GetArchiveDir(repo string) string {
	return path.Join(c.ArchiveBaseDir, repo)
}

// GetGCSObjectURL は、指定されたパスから完全なGCSオブジェクトURL ("gs://...") を組み立てます。
// ArchiveBucket が空の場合は path をそのまま返します。
func (c Config) GetGCSObjectURL(p string) string {
	if strings.HasPrefix(p, "gs://") {
		return p
	}
	if c.ArchiveBucket != "" {
		return fmt.Sprintf("gs://%s/%s", c.ArchiveBucket, p)
	}
	return p
}

// --- バリデーション ---

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
func ValidateEssentialConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("configuration error: config is nil")
	}

	if cfg.StudentSecret == "" {
		return fmt.Errorf("configuration error: STUDENT_SECRET is not set")
	}
	if cfg.GitHubToken == "" {
		return fmt.Errorf("configuration error: GITHUB_TOKEN is not set")
	}
	if cfg.GitHubUsername == "" {
		return fmt.Errorf("configuration error: GITHUB_USERNAME is not set")
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI:
		if cfg.CompletionToken == "" {
			return fmt.Errorf("configuration error: AIPIPE_TOKEN is not set")
		}
		if !IsSecureURL(cfg.CompletionAPIURL) {
			return fmt.Errorf("security error: COMPLETION_API_URL ('%s') must be HTTPS", cfg.CompletionAPIURL)
		}
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return fmt.Errorf("configuration error: GEMINI_API_KEY is not set")
		}
	default:
		return fmt.Errorf("configuration error: unsupported LLM_PROVIDER '%s'", cfg.LLMProvider)
	}

	if cfg.GitHubAPIURL != "" && !IsSecureURL(cfg.GitHubAPIURL) {
		return fmt.Errorf("security error: GITHUB_API_URL ('%s') must be HTTPS", cfg.GitHubAPIURL)
	}

	return nil
}

// IsSecureURL は指定された URL が HTTPS または localhost であるか判定します。
func IsSecureURL(rawURL string) bool {
	return securenet.IsSecureServiceURL(rawURL)
}
