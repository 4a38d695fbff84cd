package config

import (
	"os"
	"strings"
	"time"
)

const (
	DefaultPort             = "3000"
	DefaultCompletionAPIURL = "https://aipipe.org/openrouter/v1"
	DefaultCompletionModel  = "openai/gpt-4o-mini"
	DefaultGeminiModel      = "gemini-2.5-flash"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	// DefaultCompletionTimeout はコード生成 API の応答を待つ上限です。
	DefaultCompletionTimeout = 60 * time.Second
	// DefaultEvaluationTimeout は評価コールバックへの通知タイムアウトです。
	DefaultEvaluationTimeout = 10 * time.Second
	// DefaultHostingTimeout はリポジトリ作成・アップロード・Pages 有効化の各呼び出しに適用します。
	DefaultHostingTimeout = 30 * time.Second
	// DefaultHTTPTimeout は Slack 通知などの共有 HTTP クライアント用です。
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultShutdownTimeout = 15 * time.Second

	GitHubHost        = "github.com"
	GitHubPagesDomain = "github.io"
	DefaultBranch     = "main"
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
// 起動時に一度だけ構築され、その後は変更されません。
type Config struct {
	Port string

	// Code generation
	LLMProvider       string
	CompletionAPIURL  string
	CompletionToken   string // AIPIPE_TOKEN
	CompletionModel   string
	GeminiAPIKey      string
	GeminiModel       string
	CompletionTimeout time.Duration

	// Request authentication
	StudentSecret string

	// Source hosting
	GitHubAPIURL   string // 空の場合は go-github の既定値 (api.github.com)
	GitHubToken    string
	GitHubUsername string
	HostingTimeout time.Duration

	EvaluationTimeout time.Duration

	// Optional side channels
	SlackWebhookURL string
	ArchiveBucket   string // 生成物を保存する GCS バケット (空ならスキップ)
	ArchiveBaseDir  string

	ShutdownTimeout time.Duration
}

// LoadConfig は環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() *Config {
	return &Config{
		Port: getEnv("PORT", DefaultPort),

		LLMProvider:       strings.ToLower(getEnv("LLM_PROVIDER", ProviderOpenAI)),
		CompletionAPIURL:  getEnv("COMPLETION_API_URL", DefaultCompletionAPIURL),
		CompletionToken:   getEnv("AIPIPE_TOKEN", ""),
		CompletionModel:   getEnv("COMPLETION_MODEL", DefaultCompletionModel),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", DefaultGeminiModel),
		CompletionTimeout: DefaultCompletionTimeout,

		StudentSecret: getEnv("STUDENT_SECRET", ""),

		GitHubAPIURL:   getEnv("GITHUB_API_URL", ""),
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		GitHubUsername: getEnv("GITHUB_USERNAME", ""),
		HostingTimeout: DefaultHostingTimeout,

		EvaluationTimeout: DefaultEvaluationTimeout,

		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
		ArchiveBucket:   getEnv("ARCHIVE_BUCKET", ""),
		ArchiveBaseDir:  getEnv("ARCHIVE_BASE_DIR", "deployments"),

		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
