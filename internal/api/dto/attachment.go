package dto

import "io"

// Attachment 请求中随附的视频文件
type Attachment struct {
	Filename    string
	Size        int64
	ContentType string
	Extension   string
	Open        func() (io.ReadCloser, error)
}
