package domain

const (
	StatusOK    = "ok"
	StatusError = "error"

	DeployedMessage = "App deployed successfully!"
)

// TaskRequest は /api-endpoint に POST されるデプロイ指示を表します。
type TaskRequest struct {
	// Secret は事前共有シークレットです。設定値と完全一致する必要があります。
	Secret string `json:"secret"`
	// Brief は生成するアプリの自然言語による仕様です。
	Brief string `json:"brief"`
	// Task はタスクIDです。省略時は "auto-xxxxxxxx" が採番されます。
	Task string `json:"task,omitempty"`
	// Round は評価ラウンド番号です。省略時は 1 として扱います。
	Round *int `json:"round,omitempty"`
	// Nonce は評価側が発行する不透明な値で、そのまま評価レポートへ返します。
	Nonce string `json:"nonce,omitempty"`
	// EvaluationURL が指定されている場合のみ評価レポートを送信します。
	EvaluationURL string  `json:"evaluation_url,omitempty"`
	Email         *string `json:"email,omitempty"`
}

// DeploymentResult は呼び出し元へ返すレスポンスです。
// エラー時は Status と Message のみが設定されます。
type DeploymentResult struct {
	Status   string `json:"status"`
	Task     string `json:"task,omitempty"`
	Round    *int   `json:"round,omitempty"`
	RepoURL  string `json:"repo_url,omitempty"`
	PagesURL string `json:"pages_url,omitempty"`
	Message  string `json:"message"`
}

// ErrorResult はエラー用のレスポンスを生成します。
func ErrorResult(message string) DeploymentResult {
	return DeploymentResult{Status: StatusError, Message: message}
}
