package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Artifact はアーカイブ対象の生成物です。
type Artifact struct {
	Name        string
	Content     []byte
	ContentType string
}

// ArtifactArchiver は生成物を外部ストレージへ保存します。
type ArtifactArchiver interface {
	Archive(ctx context.Context, dir string, artifacts []Artifact) error
}

// ObjectWriter はストレージへの書き込み口です。remoteio.OutputWriter がこれを満たします。
type ObjectWriter interface {
	Write(ctx context.Context, path string, r io.Reader, contentType string) error
}

// GCSArchiver は go-remote-io の OutputWriter を使って生成物を保存します。
type GCSArchiver struct {
	writer ObjectWriter
}

// NewGCSArchiver はアーカイバを生成します。writer が nil の場合は保存をスキップします。
func NewGCSArchiver(writer ObjectWriter) *GCSArchiver {
	return &GCSArchiver{writer: writer}
}

// Archive は dir (例: "gs://bucket/deployments/demo-task") 配下に各生成物を書き込みます。
// 最初の失敗で中断します。
func (a *GCSArchiver) Archive(ctx context.Context, dir string, artifacts []Artifact) error {
	if a == nil || a.writer == nil {
		slog.DebugContext(ctx, "Archive writer is not configured, skipping", "dir", dir)
		return nil
	}

	for _, art := range artifacts {
		target := strings.TrimSuffix(dir, "/") + "/" + art.Name
		if err := a.writer.Write(ctx, target, bytes.NewReader(art.Content), art.ContentType); err != nil {
			return fmt.Errorf("failed to archive %s: %w", target, err)
		}
		slog.InfoContext(ctx, "Artifact archived", "path", target)
	}
	return nil
}
