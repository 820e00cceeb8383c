package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LocalStore 本地磁盘存储，适用于开发与测试
type LocalStore struct {
	basePath string
	baseURL  string
}

func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if basePath == "" {
		return nil, errors.New("local storage base path is empty")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}
	return &LocalStore{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// BasePath 存储根目录，用于挂载静态文件路由
func (s *LocalStore) BasePath() string { return s.basePath }

// BaseURL 静态文件路由前缀
func (s *LocalStore) BaseURL() string { return s.baseURL }

func (s *LocalStore) resolve(key string) (string, error) {
	full := filepath.Join(s.basePath, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.basePath, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Errorf("invalid object key %q", key)
	}
	return full, nil
}

func (s *LocalStore) Put(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.Wrap(err, "failed to create object directory")
	}

	f, err := os.Create(full)
	if err != nil {
		return errors.Wrapf(err, "failed to create object %s", key)
	}
	defer func() { _ = f.Close() }()

	if _, err = io.Copy(f, reader); err != nil {
		return errors.Wrapf(err, "failed to write object %s", key)
	}
	return nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err = os.Remove(full); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}
	return nil
}

func (s *LocalStore) URL(key string) string {
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}
