package domain

// LatestCommitMarker は評価レポートの commit_sha に固定で設定される値です。
const LatestCommitMarker = "latest"

// EvaluationReport は評価コールバックへ一度だけ送信される固定形式のレコードです。
type EvaluationReport struct {
	Email     *string `json:"email"`
	Task      string  `json:"task"`
	Round     int     `json:"round"`
	Nonce     string  `json:"nonce"`
	RepoURL   string  `json:"repo_url"`
	CommitSHA string  `json:"commit_sha"`
	PagesURL  string  `json:"pages_url"`
}

// NotificationRequest は Slack 等の運用通知コンポーネントで共有されるデータ構造です。
type NotificationRequest struct {
	// TaskID はデプロイ対象のタスクIDです。
	TaskID string `json:"task_id"`

	// RepoName は作成（または作成を試みた）リポジトリ名です。
	RepoName string `json:"repo_name"`

	// Round は評価ラウンド番号です。
	Round int `json:"round"`

	// Brief はタスクの概要です。長い場合は通知側で切り詰めます。
	Brief string `json:"brief"`
}
