package pipeline

import (
	"regexp"
	"strings"
)

// fencedBlock は最初の ``` ブロックに一致します。開始フェンス直後の言語タグと改行は任意です。
var fencedBlock = regexp.MustCompile("```(?:\\w*\\n)?([\\s\\S]*?)```")

// ExtractCode はモデルの応答から最初のフェンス付きコードブロックの中身を取り出し、前後の空白を除去します。
// ブロックが見つからない場合は応答全体を trim して返します。
func ExtractCode(response string) string {
	if m := fencedBlock.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(response)
}
