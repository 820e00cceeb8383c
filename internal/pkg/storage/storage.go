package storage

import (
	"NovaAff/internal/api/config"
	"context"
	"fmt"
	"io"
)

const (
	TypeMinIO = "minio"
	TypeLocal = "local"
)

// Store 视频附件的对象存储
type Store interface {
	// Put 写入对象，key 由调用方生成
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	// URL 返回对象的公开访问地址
	URL(key string) string
}

// New 按配置创建存储实现
func New(ctx context.Context, cfg config.StorageConfig, minioCfg config.MinIOConfig) (Store, error) {
	switch cfg.Type {
	case TypeMinIO:
		return NewMinIOStore(ctx, minioCfg)
	case TypeLocal, "":
		return NewLocalStore(cfg.BasePath, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
