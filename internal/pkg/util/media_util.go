package util

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// GetSafeContentType 按文件头嗅探真实类型，完成后把读取位置复位
func GetSafeContentType(reader io.ReadSeeker) (*mimetype.MIME, error) {
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return nil, fmt.Errorf("detect content type failed: %w", err)
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return mtype, nil
}

// BuildObjectName 生成 prefix/2006/01/02/<uuid><ext> 形式的对象名
func BuildObjectName(prefix, ext string) string {
	prefix = strings.Trim(prefix, "/")
	return path.Join(prefix, time.Now().UTC().Format("2006/01/02"), uuid.NewString()+strings.ToLower(ext))
}
