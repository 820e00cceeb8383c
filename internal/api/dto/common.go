package dto

import "NovaAff/internal/model"

// Writable 可由客户端写入的 DTO，写入前清除只读字段
type Writable interface {
	StripReadOnly()
}

// AttachmentHolder 带视频附件地址的 DTO
type AttachmentHolder interface {
	SetAttachmentURL(url *string)
}

// CreatorDescriber 展示所属创作者信息的 DTO
type CreatorDescriber interface {
	DescribeCreator(c *model.Creator)
}
