package storage

import (
	"NovaAff/internal/api/config"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutURLDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "/media/")
	require.NoError(t, err)
	ctx := context.Background()

	key := "videos/kols/2025/01/02/clip.mp4"
	require.NoError(t, store.Put(ctx, key, strings.NewReader("video-bytes"), 11, "video/mp4"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(data))
	assert.Equal(t, "/media/videos/kols/2025/01/02/clip.mp4", store.URL(key))

	require.NoError(t, store.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	// 重复删除不报错
	assert.NoError(t, store.Delete(ctx, key))
}

func TestLocalStore_RejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/media")
	require.NoError(t, err)

	err = store.Put(context.Background(), "../outside.mp4", strings.NewReader("x"), 1, "video/mp4")
	assert.Error(t, err)
	assert.Error(t, store.Delete(context.Background(), "../../etc/passwd"))
}

func TestNew_SelectsImplementation(t *testing.T) {
	dir := t.TempDir()
	store, err := New(context.Background(), config.StorageConfig{Type: TypeLocal, BasePath: dir, BaseURL: "/media"}, config.MinIOConfig{})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = New(context.Background(), config.StorageConfig{Type: "ftp"}, config.MinIOConfig{})
	assert.Error(t, err)

	_, err = New(context.Background(), config.StorageConfig{Type: TypeMinIO}, config.MinIOConfig{})
	assert.Error(t, err)
}
