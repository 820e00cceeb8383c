package dto

import "time"

type TrackingNumberDTO struct {
	ID             *uint64    `json:"id" form:"-"`
	ProjectID      *uint64    `json:"project" form:"-"`
	TrackingNumber *string    `json:"tracking_number" form:"tracking_number" validate:"required,min=1,max=50"`
	PhoneNumber    *string    `json:"phone_number" form:"phone_number" validate:"required,min=1,max=20"`
	TrackingURL    *string    `json:"tracking_url" form:"tracking_url" validate:"required,url,max=200"`
	PhoneCheck     *bool      `json:"phone_check" form:"phone_check"`
	TrackingDate   *Date      `json:"tracking_date" form:"tracking_date" validate:"required,date_fmt"`
	TiktokID       *string    `json:"tiktok_id" form:"tiktok_id" validate:"required,min=1,max=100"`
	VideoFile      *string    `json:"video_file" form:"-"`
	CreatedAt      *time.Time `json:"created_at" form:"-"`
	UpdatedAt      *time.Time `json:"updated_at" form:"-"`
}

func (d *TrackingNumberDTO) StripReadOnly() {
	d.ID, d.ProjectID, d.VideoFile, d.CreatedAt, d.UpdatedAt = nil, nil, nil, nil, nil
}

func (d *TrackingNumberDTO) SetAttachmentURL(url *string) { d.VideoFile = url }
