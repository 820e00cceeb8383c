package handler

import (
	"NovaAff/internal/api/dto"
	"NovaAff/internal/pkg/consts"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/pkg/util"
	"NovaAff/internal/service"
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// pathID 解析路径中的数字 ID，非法时直接返回 404
func pathID(c *gin.Context, name string) (uint64, bool) {
	if name == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.NotFound, "Not found.")
		return 0, false
	}
	return id, true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm)
}

// bindBody 按 Content-Type 绑定请求体，空 JSON 体视为 {}
func bindBody(c *gin.Context, target any) error {
	if isMultipart(c) {
		return c.ShouldBindWith(target, binding.FormMultipart)
	}
	if strings.HasPrefix(c.ContentType(), binding.MIMEPOSTForm) {
		return c.ShouldBindWith(target, binding.Form)
	}
	if err := c.ShouldBindJSON(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// readAttachment 读取 multipart 中的视频文件，未携带时返回 nil
func readAttachment(c *gin.Context) (*dto.Attachment, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	header, err := c.FormFile(consts.AttachmentField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	reader, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	mtype, err := util.GetSafeContentType(reader)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(mtype.String(), consts.MimePrefixVideo+"/") {
		return nil, service.NewValidationError(consts.AttachmentField, service.ErrFileNotSupported.Error())
	}

	ext := path.Ext(header.Filename)
	if ext == "" {
		ext = mtype.Extension()
	}
	return &dto.Attachment{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: mtype.String(),
		Extension:   ext,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}, nil
}
