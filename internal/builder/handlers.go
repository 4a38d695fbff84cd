package builder

import (
	"fmt"

	"llm-code-deployer/internal/server/handlers"
)

// AppHandlers は生成されたすべての HTTP ハンドラーを保持する構造体です。
// server パッケージはこの構造体を受け取ってルーティングを行います。
type AppHandlers struct {
	Web *handlers.Handler
}

// BuildHandlers は各ハンドラーの依存関係をすべて組み立て、AppHandlers 構造体を返します。
func BuildHandlers(deployer handlers.Deployer) (*AppHandlers, error) {
	if deployer == nil {
		return nil, fmt.Errorf("deployer is required")
	}

	return &AppHandlers{
		Web: handlers.NewHandler(deployer),
	}, nil
}
