package dto

import "time"

type KOLDTO struct {
	ID                      *uint64    `json:"id" form:"-"`
	ProjectID               *uint64    `json:"project" form:"-"`
	FullName                *string    `json:"full_name" form:"full_name" validate:"required,min=1,max=255"`
	SubmittedOn             *Date      `json:"submitted_on" form:"submitted_on" validate:"required,date_fmt"`
	Email                   *string    `json:"email" form:"email" validate:"required,email,max=254"`
	PhoneNumber             *string    `json:"phone_number" form:"phone_number" validate:"required,min=1,max=20"`
	Zalo                    *string    `json:"zalo" form:"zalo" validate:"required,min=1,max=20"`
	TiktokURL               *string    `json:"tiktok_url" form:"tiktok_url" validate:"required,url,max=200"`
	TiktokID                *string    `json:"tiktok_id" form:"tiktok_id" validate:"required,min=1,max=100"`
	Followers               *string    `json:"followers" form:"followers" validate:"required,min=1,max=20"`
	GMV                     *string    `json:"gmv" form:"gmv" validate:"required,min=1,max=20"`
	ChannelIdentifier       *string    `json:"channel_identifier" form:"channel_identifier" validate:"required,min=1,max=100"`
	AppropriateChannelTopic *string    `json:"appropriate_channel_topic" form:"appropriate_channel_topic" validate:"required,min=1,max=255"`
	ShippingAddress         *string    `json:"shipping_address" form:"shipping_address" validate:"required,min=1"`
	BrandApproval           *string    `json:"brand_approval" form:"brand_approval" validate:"required,min=1,max=100"`
	Note                    *string    `json:"note" form:"note" validate:"required,min=1"`
	KolKocApprovalTime      *Date      `json:"kol_koc_approval_time" form:"kol_koc_approval_time" validate:"required,date_fmt"`
	NumberTracking          *string    `json:"number_tracking" form:"number_tracking" validate:"required,min=1,max=20"`
	KocConfirmedByNova      *string    `json:"koc_confirmed_by_nova" form:"koc_confirmed_by_nova" validate:"required,min=1,max=100"`
	VideoFile               *string    `json:"video_file" form:"-"`
	CreatedAt               *time.Time `json:"created_at" form:"-"`
	UpdatedAt               *time.Time `json:"updated_at" form:"-"`
}

func (d *KOLDTO) StripReadOnly() {
	d.ID, d.ProjectID, d.VideoFile, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

func (d *KOLDTO) SetAttachmentURL(url *string) { d.VideoFile = url }
